// Package pkg provides the core libraries for Trellis graph visualization.
//
// # Overview
//
// Trellis models directed acyclic graphs and draws them as compact ASCII
// diagrams. The pkg directory is organized by concern:
//
//  1. [graph] - Generic DAG container: traversal, ordering, partitioning
//  2. [diagram] - Row layout and text rendering of a graph
//  3. [graphfile] - JSON file format for string-labeled graphs
//  4. [dot] - Graphviz DOT export and SVG/PNG rendering
//  5. [cache] - Rendered-artifact cache for repeat CLI runs
//  6. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build a graph and draw it:
//
//	g := graph.Init("a", "b", "c")
//	g.ConnectAll([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"})
//	fmt.Println(diagram.Render(g))
//
// The typical CLI data flow:
//
//	JSON graph file
//	      ↓
//	 [graphfile] (decode, replay construction)
//	      ↓
//	 [graph] (topological ordering)
//	      ↓
//	 [diagram] or [dot] output
//
// [graph]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/graph
// [diagram]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/diagram
// [graphfile]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/graphfile
// [dot]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/dot
// [cache]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/trellis-dev/trellis/pkg/buildinfo
package pkg
