// Package diagram renders a directed acyclic graph as ASCII art, one row
// per node in topological order, with edges drawn as vertical bars and
// diagonals between rows.
//
// Layout happens in two stages. [Build] turns the graph's topological
// ordering into positional rows: each row inherits the columns of the row
// above it, and every outgoing edge of a row's node is threaded downward as
// a pending "obligation" until its target node is drawn. [Layout.Render]
// then draws the connector lines between each pair of adjacent rows,
// allocating extra lines when paths would otherwise overlap.
//
// The diagram for
//
//	g := graph.Init("a", "b", "c")
//	g.ConnectAll([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"})
//	fmt.Println(diagram.Render(g))
//
// is
//
//	a
//	|\
//	b |
//	|/
//	c
//
// Columns are sized to the widest label, so multi-character labels stay
// aligned. Disconnected components are laid out back-to-back in one
// diagram, separated by blank connector lines.
package diagram
