package graph

import (
	"errors"
	"slices"
)

var (
	// ErrAbsentNode is returned by operations that require a registered label
	// when the label is not in the graph. It is distinct from "present but
	// empty": a node with no neighbors is still present.
	ErrAbsentNode = errors.New("node not in graph")

	// ErrAbsentStart is returned by [Graph.WalkFrom] when the start label is
	// not in the graph.
	ErrAbsentStart = errors.New("walk start not in graph")
)

// Graph is a directed acyclic graph over labels of type T. Nodes are keyed by
// an identity hash of their label, and edges are stored as key pairs inside
// the owning node, so the structure itself is always tree-shaped.
//
// The graph rejects self-loops and any edge that would close a directed
// cycle, so every consumer (ordering, layout, partition) can assume a DAG.
//
// Nodes and per-node edges keep insertion order: neighbor enumeration,
// topological orderings, and diagrams are reproducible across runs.
//
// The zero value is not usable - use [New], [NewFunc], or [Init].
// Graph is not safe for concurrent use without external synchronization.
type Graph[T any] struct {
	hash  Hasher[T]
	nodes map[uint64]*node[T]
	seq   []uint64 // node keys in insertion order
}

// node owns one label and its outgoing edges. Edges reference targets by
// identity key, never by pointer, so the ownership shape stays a tree even
// when the relation itself fans in and out.
type node[T any] struct {
	label   T
	weights map[uint64]int // target key -> weight (always 1)
	order   []uint64       // target keys in insertion order
}

func (n *node[T]) connectTo(key uint64) {
	if _, ok := n.weights[key]; ok {
		return
	}
	n.weights[key] = 1
	n.order = append(n.order, key)
}

func (n *node[T]) disconnectFrom(key uint64) bool {
	if _, ok := n.weights[key]; !ok {
		return false
	}
	delete(n.weights, key)
	n.order = slices.DeleteFunc(n.order, func(k uint64) bool { return k == key })
	return true
}

// New creates an empty graph using the default label hasher.
func New[T comparable]() *Graph[T] {
	return NewFunc(defaultHasher[T]())
}

// NewFunc creates an empty graph with a caller-supplied identity function.
// The hasher must be pure and collision-free over the active label set; see
// [Hasher].
func NewFunc[T any](h Hasher[T]) *Graph[T] {
	return &Graph[T]{
		hash:  h,
		nodes: make(map[uint64]*node[T]),
	}
}

// Init builds a graph from a finite sequence of labels, adding each in
// order. Duplicate labels under the identity function collapse to one node.
func Init[T comparable](labels ...T) *Graph[T] {
	g := New[T]()
	g.AddAll(labels...)
	return g
}

// Key returns the identity key of a label. The result is stable for the
// lifetime of the graph and does not depend on whether the label is present.
func (g *Graph[T]) Key(label T) uint64 { return g.hash(label) }

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Add inserts a node with no edges. If a node with the same identity key
// already exists it is replaced, edges included.
func (g *Graph[T]) Add(label T) {
	key := g.hash(label)
	if _, exists := g.nodes[key]; !exists {
		g.seq = append(g.seq, key)
	}
	g.nodes[key] = &node[T]{
		label:   label,
		weights: make(map[uint64]int),
	}
}

// AddAll inserts each label in sequence order.
func (g *Graph[T]) AddAll(labels ...T) {
	for _, label := range labels {
		g.Add(label)
	}
}

// Remove deletes the node and strips every other node's edge targeting it.
// It returns the removed label and true, or the zero value and false if the
// label is not in the graph. Runs in O(nodes).
func (g *Graph[T]) Remove(label T) (T, bool) {
	key := g.hash(label)
	n, ok := g.nodes[key]
	if !ok {
		var zero T
		return zero, false
	}
	delete(g.nodes, key)
	g.seq = slices.DeleteFunc(g.seq, func(k uint64) bool { return k == key })
	for _, other := range g.nodes {
		other.disconnectFrom(key)
	}
	return n.label, true
}

// Connect inserts the directed edge from -> to with weight 1. It reports
// whether the edge was accepted: both endpoints must exist, the edge must
// not be a self-loop, and to must not already reach from (such an edge would
// close a cycle). The three rejection causes are not distinguished.
func (g *Graph[T]) Connect(from, to T) bool {
	a, b := g.hash(from), g.hash(to)
	src, okA := g.nodes[a]
	_, okB := g.nodes[b]
	if !okA || !okB || a == b {
		return false
	}
	if g.reaches(b, a) {
		return false
	}
	src.connectTo(b)
	return true
}

// ConnectAll attempts Connect on each pair in order, silently skipping
// rejected pairs. It returns the number of edges accepted.
func (g *Graph[T]) ConnectAll(pairs ...[2]T) int {
	accepted := 0
	for _, p := range pairs {
		if g.Connect(p[0], p[1]) {
			accepted++
		}
	}
	return accepted
}

// Disconnect removes the edge from -> to if present and reports whether an
// edge was removed.
func (g *Graph[T]) Disconnect(from, to T) bool {
	src, ok := g.nodes[g.hash(from)]
	if !ok {
		return false
	}
	b := g.hash(to)
	if _, ok := g.nodes[b]; !ok {
		return false
	}
	return src.disconnectFrom(b)
}

// Adjacent returns the labels of the node's outgoing neighbors in edge
// insertion order. The second result distinguishes an absent label (false)
// from a present node with no neighbors (true, empty slice).
func (g *Graph[T]) Adjacent(label T) ([]T, bool) {
	n, ok := g.nodes[g.hash(label)]
	if !ok {
		return nil, false
	}
	out := make([]T, len(n.order))
	for i, key := range n.order {
		out[i] = g.nodes[key].label
	}
	return out, true
}

// IsAdjacent reports whether the directed edge from -> to exists.
func (g *Graph[T]) IsAdjacent(from, to T) bool {
	n, ok := g.nodes[g.hash(from)]
	if !ok {
		return false
	}
	_, ok = n.weights[g.hash(to)]
	return ok
}

// Labels returns all labels in node insertion order.
func (g *Graph[T]) Labels() []T {
	out := make([]T, len(g.seq))
	for i, key := range g.seq {
		out[i] = g.nodes[key].label
	}
	return out
}

// Edges returns every directed edge as a (from, to) label pair, enumerated
// in node insertion order and, per node, edge insertion order.
func (g *Graph[T]) Edges() [][2]T {
	var out [][2]T
	for _, key := range g.seq {
		n := g.nodes[key]
		for _, target := range n.order {
			out = append(out, [2]T{n.label, g.nodes[target].label})
		}
	}
	return out
}

// Pick returns an arbitrary label, preferring the oldest surviving
// insertion. It reports false for an empty graph.
func (g *Graph[T]) Pick() (T, bool) {
	if len(g.seq) == 0 {
		var zero T
		return zero, false
	}
	return g.nodes[g.seq[0]].label, true
}

// OutDegree returns the number of outgoing edges, or false if the label is
// not in the graph.
func (g *Graph[T]) OutDegree(label T) (int, bool) {
	n, ok := g.nodes[g.hash(label)]
	if !ok {
		return 0, false
	}
	return len(n.order), true
}

// InDegree returns the number of distinct predecessors, or false if the
// label is not in the graph. Runs in O(nodes + edges).
func (g *Graph[T]) InDegree(label T) (int, bool) {
	key := g.hash(label)
	if _, ok := g.nodes[key]; !ok {
		return 0, false
	}
	return g.indegrees()[key], true
}

// Sources returns the labels with no incoming edges, in insertion order.
// Non-empty for any non-empty graph, since the graph is always acyclic.
func (g *Graph[T]) Sources() []T {
	degrees := g.indegrees()
	var out []T
	for _, key := range g.seq {
		if degrees[key] == 0 {
			out = append(out, g.nodes[key].label)
		}
	}
	return out
}

// Sinks returns the labels with no outgoing edges, in insertion order.
func (g *Graph[T]) Sinks() []T {
	var out []T
	for _, key := range g.seq {
		if n := g.nodes[key]; len(n.order) == 0 {
			out = append(out, n.label)
		}
	}
	return out
}

// indegrees counts distinct predecessors per node key.
func (g *Graph[T]) indegrees() map[uint64]int {
	degrees := make(map[uint64]int, len(g.nodes))
	for _, key := range g.seq {
		if _, ok := degrees[key]; !ok {
			degrees[key] = 0
		}
		for _, target := range g.nodes[key].order {
			degrees[target]++
		}
	}
	return degrees
}

// sourceKeys returns the keys with in-degree zero in insertion order.
func (g *Graph[T]) sourceKeys() []uint64 {
	degrees := g.indegrees()
	var out []uint64
	for _, key := range g.seq {
		if degrees[key] == 0 {
			out = append(out, key)
		}
	}
	return out
}

// neighborKeys returns the outgoing edge targets of a key in insertion
// order. The returned slice is the node's own and must not be modified.
func (g *Graph[T]) neighborKeys(key uint64) []uint64 {
	n, ok := g.nodes[key]
	if !ok {
		return nil
	}
	return n.order
}

// label returns the label stored under a key.
func (g *Graph[T]) label(key uint64) T {
	return g.nodes[key].label
}

// reaches reports whether a directed path from -> to exists. Iterative DFS
// over keys; used by Connect for the cycle check.
func (g *Graph[T]) reaches(from, to uint64) bool {
	if from == to {
		return true
	}
	visited := map[uint64]struct{}{from: {}}
	stack := []uint64{from}
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.neighborKeys(key) {
			if next == to {
				return true
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	return false
}
