package graph_test

import (
	"fmt"

	"github.com/trellis-dev/trellis/pkg/graph"
)

func ExampleGraph_basic() {
	g := graph.Init("app", "lib", "core")
	g.Connect("app", "lib")
	g.Connect("lib", "core")

	fmt.Println("nodes:", g.Len())
	fmt.Println("sources:", g.Sources())
	fmt.Println("sinks:", g.Sinks())
	// Output:
	// nodes: 3
	// sources: [app]
	// sinks: [core]
}

func ExampleGraph_Connect_cycleRejected() {
	g := graph.Init("a", "b", "c")
	g.Connect("a", "b")
	g.Connect("b", "c")

	// c already reaches nothing, but a reaches c: closing the loop is refused.
	fmt.Println(g.Connect("c", "a"))
	// Output:
	// false
}

func ExampleGraph_Ordering() {
	g := graph.Init("a", "b", "c")
	g.ConnectAll([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"})

	fmt.Println(g.Ordering())
	// Output:
	// [a b c]
}

func ExampleGraph_WalkFrom() {
	g := graph.Init("a", "b", "c")
	g.Connect("a", "b")
	g.Connect("b", "c")

	w, _ := g.WalkFrom("a", graph.Depth)
	for label := range w.Seq() {
		fmt.Println(label)
	}
	// Output:
	// a
	// b
	// c
}

func ExampleGraph_Partition() {
	g := graph.Init("a", "b", "x", "y")
	g.Connect("a", "b")
	g.Connect("x", "y")

	for part := range g.Partition().Seq() {
		fmt.Println(part.Labels())
	}
	// Output:
	// [a b]
	// [x y]
}
