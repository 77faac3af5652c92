package graph

import (
	"slices"
	"testing"
)

func TestOrderingRespectsEdges(t *testing.T) {
	tests := []struct {
		name   string
		labels []rune
		pairs  [][2]rune
	}{
		{
			name:   "Triangle",
			labels: []rune{'a', 'b', 'c'},
			pairs:  [][2]rune{{'a', 'b'}, {'a', 'c'}, {'b', 'c'}},
		},
		{
			name:   "Braid",
			labels: []rune{'a', 'b', 'c', 'd', 'e', 'f'},
			pairs: [][2]rune{
				{'a', 'b'}, {'b', 'c'}, {'a', 'd'},
				{'c', 'e'}, {'d', 'c'}, {'d', 'e'}, {'d', 'f'}, {'f', 'e'},
			},
		},
		{
			name:   "TwoComponents",
			labels: []rune{'a', 'b', 'c', 'd', 'e'},
			pairs:  [][2]rune{{'a', 'b'}, {'a', 'c'}, {'b', 'c'}, {'d', 'e'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Init(tt.labels...)
			if got := g.ConnectAll(tt.pairs...); got != len(tt.pairs) {
				t.Fatalf("ConnectAll accepted %d, want %d", got, len(tt.pairs))
			}

			order := g.Ordering()
			if len(order) != len(tt.labels) {
				t.Fatalf("ordering covers %d nodes, want %d", len(order), len(tt.labels))
			}
			for _, e := range g.Edges() {
				if slices.Index(order, e[0]) >= slices.Index(order, e[1]) {
					t.Errorf("edge %c->%c violated in %q", e[0], e[1], order)
				}
			}
		})
	}
}

func TestOrderingEndpoints(t *testing.T) {
	g := Init('a', 'b', 'c')
	g.ConnectAll([2]rune{'a', 'b'}, [2]rune{'a', 'c'}, [2]rune{'b', 'c'})

	order := g.Ordering()
	if order[0] != 'a' {
		t.Errorf("ordering starts with %c, want a", order[0])
	}
	if order[len(order)-1] != 'c' {
		t.Errorf("ordering ends with %c, want c", order[len(order)-1])
	}
}

func TestOrderingRestartable(t *testing.T) {
	g := Init('a', 'b', 'c')
	g.ConnectAll([2]rune{'a', 'b'}, [2]rune{'b', 'c'})

	first := g.Ordering()
	second := g.Ordering()
	if !slices.Equal(first, second) {
		t.Errorf("orderings differ across calls: %q vs %q", first, second)
	}
}

func TestOrderingEmpty(t *testing.T) {
	g := New[rune]()
	if got := g.Ordering(); len(got) != 0 {
		t.Errorf("ordering of empty graph = %q, want empty", got)
	}
}
