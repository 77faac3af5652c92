package graph

import (
	"slices"
	"testing"
)

func drain(p *Parts[rune]) []*Graph[rune] {
	var out []*Graph[rune]
	for part, ok := p.Next(); ok; part, ok = p.Next() {
		out = append(out, part)
	}
	return out
}

func TestPartitionTrivialDisconnected(t *testing.T) {
	labels := []rune("abcdefghij")
	g := Init(labels...)

	parts := drain(g.Partition())
	if len(parts) != len(labels) {
		t.Fatalf("got %d components, want %d", len(parts), len(labels))
	}
	for _, part := range parts {
		if part.Len() != 1 {
			t.Errorf("component size = %d, want 1", part.Len())
		}
	}
	if g.Len() != 0 {
		t.Errorf("source graph has %d nodes left, want drained", g.Len())
	}
}

func TestPartitionSingleComponent(t *testing.T) {
	g := Init('a', 'b', 'c')
	g.ConnectAll([2]rune{'a', 'b'}, [2]rune{'a', 'c'}, [2]rune{'b', 'c'})

	parts := drain(g.Partition())
	if len(parts) != 1 {
		t.Fatalf("got %d components, want 1", len(parts))
	}
	part := parts[0]
	if part.Len() != 3 {
		t.Errorf("component size = %d, want 3", part.Len())
	}
	// The relocated component keeps its edge sets intact.
	if got := len(part.Edges()); got != 3 {
		t.Errorf("component edges = %d, want 3", got)
	}
	if !part.IsAdjacent('a', 'b') || !part.IsAdjacent('b', 'c') {
		t.Error("component lost edges during relocation")
	}
}

func TestPartitionMixedComponents(t *testing.T) {
	g := Init('a', 'b', 'c', 'd', 'e')
	g.ConnectAll([2]rune{'a', 'b'}, [2]rune{'a', 'c'}, [2]rune{'b', 'c'}, [2]rune{'d', 'e'})

	var sizes []int
	var union []rune
	for _, part := range drain(g.Partition()) {
		sizes = append(sizes, part.Len())
		for _, l := range part.Labels() {
			if slices.Contains(union, l) {
				t.Errorf("label %c appeared in two components", l)
			}
			union = append(union, l)
		}
		// No edge may cross out of a component.
		for _, e := range part.Edges() {
			if !slices.Contains(part.Labels(), e[1]) {
				t.Errorf("edge %c->%c crosses components", e[0], e[1])
			}
		}
	}

	slices.Sort(sizes)
	if !slices.Equal(sizes, []int{2, 3}) {
		t.Errorf("component sizes = %v, want [2 3]", sizes)
	}
	slices.Sort(union)
	if !slices.Equal(union, []rune("abcde")) {
		t.Errorf("union of components = %q, want abcde", union)
	}
}

// A node fed from two separate sources belongs to one component: the tags
// are computed over the undirected view of the adjacency.
func TestPartitionSharedSink(t *testing.T) {
	g := Init('a', 'b', 'c')
	g.ConnectAll([2]rune{'a', 'c'}, [2]rune{'b', 'c'})

	parts := drain(g.Partition())
	if len(parts) != 1 {
		t.Fatalf("got %d components, want 1", len(parts))
	}
	if parts[0].Len() != 3 {
		t.Errorf("component size = %d, want 3", parts[0].Len())
	}
}

func TestPartitionConsumesSource(t *testing.T) {
	g := Init('a', 'b')
	p := g.Partition()

	if _, ok := p.Next(); !ok {
		t.Fatal("first Next produced nothing")
	}
	if _, ok := p.Next(); !ok {
		t.Fatal("second Next produced nothing")
	}
	if _, ok := p.Next(); ok {
		t.Error("exhausted partition produced another component")
	}
	if g.Len() != 0 {
		t.Errorf("source graph has %d nodes left, want 0", g.Len())
	}
}

func TestPartitionSeq(t *testing.T) {
	g := Init('a', 'b', 'c', 'd')
	g.ConnectAll([2]rune{'a', 'b'}, [2]rune{'c', 'd'})

	count := 0
	for part := range g.Partition().Seq() {
		if part.Len() != 2 {
			t.Errorf("component size = %d, want 2", part.Len())
		}
		count++
	}
	if count != 2 {
		t.Errorf("yielded %d components, want 2", count)
	}
}
