package diagram

import (
	"fmt"
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/trellis-dev/trellis/pkg/graph"
)

// SlotKind distinguishes what occupies one column of a [Row].
type SlotKind int

const (
	// SlotEmpty is a column no longer carrying anything.
	SlotEmpty SlotKind = iota
	// SlotNode is the column where the row's own label is drawn.
	SlotNode
	// SlotConnector is a column threading a pending edge downward to a
	// label that has not been drawn yet.
	SlotConnector
)

// Slot is one column of a row. Target is the identity key of the pending
// label and is meaningful only for SlotConnector.
type Slot struct {
	Kind   SlotKind
	Target uint64
}

// Row is one horizontal layer of the diagram: the slots for a single label,
// in topological position. Every row holds exactly one SlotNode, and every
// SlotConnector names a label drawn in some later row.
type Row[T any] struct {
	Label T
	Slots []Slot

	key       uint64
	neighbors []uint64 // outgoing edge targets of Label, in store order
}

// Layout is the full positional plan for a graph: one row per node in
// topological order, with pending edges threaded across rows. Build captures
// everything the renderer needs, so a Layout stays valid even if the source
// graph is mutated afterwards.
type Layout[T any] struct {
	Rows []Row[T]

	format func(T) string
	cell   int // column width in display cells
}

// Option configures Build.
type Option[T any] func(*Layout[T])

// WithFormat overrides how labels are turned into display text.
// The default is fmt.Sprint.
func WithFormat[T any](f func(T) string) Option[T] {
	return func(l *Layout[T]) { l.format = f }
}

// Build lays a graph out row by row. Rows follow the graph's topological
// ordering; each row inherits its columns from the previous one, threading
// the previous label's outgoing edges ("obligations") downward.
func Build[T any](g *graph.Graph[T], opts ...Option[T]) *Layout[T] {
	l := &Layout[T]{format: func(v T) string { return fmt.Sprint(v) }}
	for _, opt := range opts {
		opt(l)
	}

	for _, label := range g.Ordering() {
		neighbors, _ := g.Adjacent(label)
		keys := make([]uint64, len(neighbors))
		for i, n := range neighbors {
			keys[i] = g.Key(n)
		}
		row := Row[T]{Label: label, key: g.Key(label), neighbors: keys}

		if len(l.Rows) == 0 {
			row.Slots = []Slot{{Kind: SlotNode}}
		} else {
			row.Slots = inherit(&l.Rows[len(l.Rows)-1], row.key)
		}
		l.Rows = append(l.Rows, row)
	}

	l.cell = l.cellWidth()
	return l
}

// inherit derives the slots of the row holding key from the previous row.
//
// Scanning the previous row's columns left to right:
//   - The previous label's own column frees up and takes the first
//     obligation: the new node itself if it is a direct neighbor, otherwise
//     a connector for the next pending edge.
//   - A connector naming key closes: the first one becomes the node's
//     column, any repeat degrades to empty.
//   - Once obligations are exhausted, the first freed or empty column takes
//     the node if it still has no column, so rows never widen past the
//     edges that are actually pending.
//   - Everything else carries forward unchanged.
//
// Obligations that found no inherited column widen the row as trailing
// connectors, and if no column took the node itself, it is appended last.
func inherit[T any](prev *Row[T], key uint64) []Slot {
	obligations := slices.Clone(prev.neighbors)
	placed := false
	consume := func(k uint64) {
		obligations = slices.DeleteFunc(obligations, func(o uint64) bool { return o == k })
	}

	slots := make([]Slot, 0, len(prev.Slots)+1)
	for _, s := range prev.Slots {
		switch s.Kind {
		case SlotNode:
			switch {
			case !placed && slices.Contains(obligations, key):
				consume(key)
				slots = append(slots, Slot{Kind: SlotNode})
				placed = true
			case len(obligations) > 0:
				slots = append(slots, Slot{Kind: SlotConnector, Target: obligations[0]})
				obligations = obligations[1:]
			case !placed:
				slots = append(slots, Slot{Kind: SlotNode})
				placed = true
			default:
				slots = append(slots, Slot{Kind: SlotEmpty})
			}
		case SlotConnector:
			switch {
			case s.Target != key:
				slots = append(slots, s)
			case !placed:
				consume(key)
				slots = append(slots, Slot{Kind: SlotNode})
				placed = true
			default:
				slots = append(slots, Slot{Kind: SlotEmpty})
			}
		default:
			if !placed && len(obligations) == 0 {
				slots = append(slots, Slot{Kind: SlotNode})
				placed = true
			} else {
				slots = append(slots, Slot{Kind: SlotEmpty})
			}
		}
	}

	for _, target := range obligations {
		slots = append(slots, Slot{Kind: SlotConnector, Target: target})
	}
	if !placed {
		slots = append(slots, Slot{Kind: SlotNode})
	}
	return slots
}

// columnOf resolves the column a pending label occupies in a row: its node
// slot, or the first connector naming it. A miss is a violated layout
// invariant, not a runtime condition, and panics.
func columnOf[T any](r *Row[T], target uint64) int {
	for i, s := range r.Slots {
		if s.Kind == SlotNode && r.key == target {
			return i
		}
		if s.Kind == SlotConnector && s.Target == target {
			return i
		}
	}
	panic(fmt.Sprintf("diagram: pending edge target %d has no column in row %v", target, r.Label))
}

// cellWidth returns the display width every column is padded to: the widest
// label in the layout, at minimum one cell.
func (l *Layout[T]) cellWidth() int {
	width := 1
	for _, r := range l.Rows {
		if w := runewidth.StringWidth(l.format(r.Label)); w > width {
			width = w
		}
	}
	return width
}
