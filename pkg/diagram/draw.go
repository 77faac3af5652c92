package diagram

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/trellis-dev/trellis/pkg/graph"
)

// Render lays out a graph and renders the full diagram in one step.
// Disconnected components appear back-to-back in the same ordering.
func Render[T any](g *graph.Graph[T], opts ...Option[T]) string {
	return Build(g, opts...).Render()
}

// Render draws the layout as text: row line, connector block, row line, and
// so on, joined by newlines. There is no connector block before the first
// row or after the last, and an empty layout renders as an empty string.
func (l *Layout[T]) Render() string {
	if len(l.Rows) == 0 {
		return ""
	}
	var lines []string
	for i := range l.Rows {
		lines = append(lines, l.rowText(&l.Rows[i]))
		if i+1 < len(l.Rows) {
			lines = append(lines, l.connectors(&l.Rows[i], &l.Rows[i+1])...)
		}
	}
	return strings.Join(lines, "\n")
}

// rowText renders one row: the label in its node column, a bar for each
// pending edge, blanks elsewhere. Columns are padded to the layout's cell
// width and separated by one space.
func (l *Layout[T]) rowText(r *Row[T]) string {
	cells := make([]string, len(r.Slots))
	for i, s := range r.Slots {
		switch s.Kind {
		case SlotNode:
			cells[i] = runewidth.FillRight(l.format(r.Label), l.cell)
		case SlotConnector:
			cells[i] = runewidth.FillRight("|", l.cell)
		default:
			cells[i] = strings.Repeat(" ", l.cell)
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

// connectors draws the text lines between two adjacent rows. Every pending
// edge in prev, plus one fan-out path per outgoing neighbor of prev's own
// label, becomes a path to its column in next: a vertical bar for the same
// column, a diagonal for a column change. A path whose glyphs would collide
// with an already drawn one starts its run on a later line, growing the
// block; vertical bars then reconnect each run to its rows.
func (l *Layout[T]) connectors(prev, next *Row[T]) []string {
	var paths [][2]int
	for col, s := range prev.Slots {
		switch s.Kind {
		case SlotConnector:
			paths = append(paths, [2]int{col, columnOf(next, s.Target)})
		case SlotNode:
			for _, n := range prev.neighbors {
				paths = append(paths, [2]int{col, columnOf(next, n)})
			}
		}
	}
	if len(paths) == 0 {
		return []string{""}
	}

	var g glyphGrid
	runs := make([]run, 0, len(paths))
	for _, p := range paths {
		r := l.pathRun(p[0], p[1])
		for !g.fits(r) {
			r.start++
		}
		g.place(r)
		runs = append(runs, r)
	}

	// Reconnect delayed and short runs to both rows with vertical bars,
	// written into blank cells only.
	height := len(g.lines)
	for _, r := range runs {
		for line := 0; line < r.start; line++ {
			g.placeSoft(line, r.originX, '|')
		}
		for line := r.start + len(r.xs); line < height; line++ {
			g.placeSoft(line, r.landingX, '|')
		}
	}
	return g.text()
}

// run is one path's glyph sequence: xs[i] is drawn on line start+i.
type run struct {
	glyph    rune
	xs       []int
	start    int
	originX  int // column position under prev's slot
	landingX int // column position above next's slot
}

// pathRun plots the glyphs connecting column from (in the previous row) to
// column to (in the next row). Same column: one vertical bar. Otherwise a
// diagonal stepping one character per line from beside the origin to beside
// the landing column.
func (l *Layout[T]) pathRun(from, to int) run {
	px := func(col int) int { return col * (l.cell + 1) }
	r := run{originX: px(from), landingX: px(to)}

	switch {
	case from == to:
		r.glyph = '|'
		r.xs = []int{px(from)}
	case to > from:
		r.glyph = '\\'
		for x := px(from) + 1; x < px(to); x++ {
			r.xs = append(r.xs, x)
		}
	default:
		r.glyph = '/'
		for x := px(from) - 1; x > px(to); x-- {
			r.xs = append(r.xs, x)
		}
	}
	return r
}

// glyphGrid is the character grid of one connector block. Lines grow on
// demand; unset cells are blank.
type glyphGrid struct {
	lines [][]rune
}

func (g *glyphGrid) get(line, x int) rune {
	if line >= len(g.lines) || x >= len(g.lines[line]) {
		return ' '
	}
	return g.lines[line][x]
}

func (g *glyphGrid) set(line, x int, glyph rune) {
	for line >= len(g.lines) {
		g.lines = append(g.lines, nil)
	}
	for x >= len(g.lines[line]) {
		g.lines[line] = append(g.lines[line], ' ')
	}
	g.lines[line][x] = glyph
}

// fits reports whether the run can be drawn at its current start line:
// every wanted cell is blank or already carries the identical glyph
// (verticals and parallel diagonals may share).
func (g *glyphGrid) fits(r run) bool {
	for i, x := range r.xs {
		if c := g.get(r.start+i, x); c != ' ' && c != r.glyph {
			return false
		}
	}
	return true
}

func (g *glyphGrid) place(r run) {
	for i, x := range r.xs {
		g.set(r.start+i, x, r.glyph)
	}
}

// placeSoft writes a glyph only if the cell is blank.
func (g *glyphGrid) placeSoft(line, x int, glyph rune) {
	if g.get(line, x) == ' ' {
		g.set(line, x, glyph)
	}
}

func (g *glyphGrid) text() []string {
	out := make([]string, len(g.lines))
	for i, line := range g.lines {
		out[i] = strings.TrimRight(string(line), " ")
	}
	return out
}
