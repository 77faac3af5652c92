package graph

import (
	"iter"
	"slices"
)

// Parts is a lazy, destructive decomposition of a graph into its connected
// components (maximal sets of nodes mutually reachable when edge direction
// is ignored). Each call to [Parts.Next] relocates one component - node
// structs and their edge sets intact - out of the source graph into a fresh
// graph sharing the source's hasher, until the source is empty.
//
// Parts consumes its source: the sequence is finite and not restartable, and
// the source graph must not be mutated by anyone else while parts remain.
type Parts[T any] struct {
	graph *Graph[T]
	tags  map[uint64]uint64 // node key -> component root key
}

// Partition tags every node with a component and returns the draining
// sequence. Tags are computed up front with depth-first walks over the
// undirected view of the adjacency, captured before any relocation: a node
// fed by two different sources still lands in one component.
func (g *Graph[T]) Partition() *Parts[T] {
	undirected := make(map[uint64][]uint64, len(g.nodes))
	for _, key := range g.seq {
		for _, target := range g.neighborKeys(key) {
			undirected[key] = append(undirected[key], target)
			undirected[target] = append(undirected[target], key)
		}
	}

	tags := make(map[uint64]uint64, len(g.nodes))
	for _, root := range g.seq {
		if _, done := tags[root]; done {
			continue
		}
		tags[root] = root
		stack := []uint64{root}
		for len(stack) > 0 {
			key := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range undirected[key] {
				if _, done := tags[next]; done {
					continue
				}
				tags[next] = root
				stack = append(stack, next)
			}
		}
	}

	return &Parts[T]{graph: g, tags: tags}
}

// Next relocates the component of the oldest remaining node into a new
// graph and returns it, or false once the source graph is empty.
func (p *Parts[T]) Next() (*Graph[T], bool) {
	if len(p.graph.seq) == 0 {
		return nil, false
	}
	root := p.tags[p.graph.seq[0]]

	part := NewFunc(p.graph.hash)
	for _, key := range p.graph.seq {
		if p.tags[key] != root {
			continue
		}
		part.nodes[key] = p.graph.nodes[key]
		part.seq = append(part.seq, key)
		delete(p.graph.nodes, key)
		delete(p.tags, key)
	}
	p.graph.seq = slices.DeleteFunc(p.graph.seq, func(k uint64) bool {
		_, relocated := part.nodes[k]
		return relocated
	})

	return part, true
}

// Seq adapts the partition to a range-over-func sequence over components.
func (p *Parts[T]) Seq() iter.Seq[*Graph[T]] {
	return func(yield func(*Graph[T]) bool) {
		for {
			part, ok := p.Next()
			if !ok || !yield(part) {
				return
			}
		}
	}
}
