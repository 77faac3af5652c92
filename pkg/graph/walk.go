package graph

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Mode selects the traversal order of a [Walk].
type Mode int

const (
	// Breadth visits nodes level by level (FIFO work-list).
	Breadth Mode = iota
	// Depth follows each branch to its end before backtracking (LIFO).
	Depth
)

// String returns the mode name for logs and error messages.
func (m Mode) String() string {
	switch m {
	case Breadth:
		return "breadth"
	case Depth:
		return "depth"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Walk is a lazy traversal over a graph from one or more roots. Both orders
// share one explicit double-ended work-list: new neighbors are always pushed
// to the front, and the removal end alone decides between DFS (front) and
// BFS (back). The visited set is checked before insertion, so every
// reachable node is produced exactly once even when bidirectional edges form
// undirected cycles.
//
// A Walk is finite and not restartable: once exhausted, start a new one.
// It borrows its graph for its lifetime and must not be advanced across a
// mutation of that graph.
type Walk[T any] struct {
	mode    Mode
	graph   *Graph[T]
	buffer  *doublylinkedlist.List
	visited map[uint64]struct{}
}

// WalkFrom starts a traversal at a single root. It returns [ErrAbsentStart]
// if the label is not in the graph.
func (g *Graph[T]) WalkFrom(start T, mode Mode) (*Walk[T], error) {
	key := g.hash(start)
	if _, ok := g.nodes[key]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrAbsentStart, start)
	}
	w := newWalk(g, mode)
	w.push(key)
	return w, nil
}

// Search starts a traversal seeded with every source (in-degree zero) node.
// For an empty graph the walk is empty.
func (g *Graph[T]) Search(mode Mode) *Walk[T] {
	w := newWalk(g, mode)
	for _, key := range g.sourceKeys() {
		w.push(key)
	}
	return w
}

func newWalk[T any](g *Graph[T], mode Mode) *Walk[T] {
	return &Walk[T]{
		mode:    mode,
		graph:   g,
		buffer:  doublylinkedlist.New(),
		visited: make(map[uint64]struct{}),
	}
}

// push marks a key visited and places it at the front of the work-list.
func (w *Walk[T]) push(key uint64) {
	w.visited[key] = struct{}{}
	w.buffer.Prepend(key)
}

// Next produces the next label, or false once the work-list is empty.
func (w *Walk[T]) Next() (T, bool) {
	index := 0
	if w.mode == Breadth {
		index = w.buffer.Size() - 1
	}
	v, ok := w.buffer.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	w.buffer.Remove(index)

	key := v.(uint64)
	for _, next := range w.graph.neighborKeys(key) {
		if _, seen := w.visited[next]; seen {
			continue
		}
		w.push(next)
	}
	return w.graph.label(key), true
}

// Seq adapts the walk to a range-over-func sequence. The sequence shares the
// walk's state: breaking out of the range and resuming later continues where
// it stopped.
func (w *Walk[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			label, ok := w.Next()
			if !ok || !yield(label) {
				return
			}
		}
	}
}
