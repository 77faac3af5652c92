package diagram

import (
	"strings"
	"testing"

	"github.com/trellis-dev/trellis/pkg/graph"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(graph.New[string]()); got != "" {
		t.Errorf("rendered %q, want empty", got)
	}
}

func TestRenderSingleNode(t *testing.T) {
	if got := Render(graph.Init("a")); got != "a" {
		t.Errorf("rendered %q, want %q", got, "a")
	}
}

func TestRenderDisconnected(t *testing.T) {
	g := graph.Init("a", "b", "c")
	want := "a\n\nb\n\nc"
	if got := Render(g); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderMixedComponents(t *testing.T) {
	g := graph.Init("a", "b", "c")
	g.Connect("a", "b")

	want := strings.Join([]string{
		"a",
		"|",
		"b",
		"",
		"c",
	}, "\n")
	if got := Render(g); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderChain(t *testing.T) {
	g := graph.Init("a", "b", "c")
	g.ConnectAll([2]string{"a", "b"}, [2]string{"b", "c"})

	want := strings.Join([]string{
		"a",
		"|",
		"b",
		"|",
		"c",
	}, "\n")
	if got := Render(g); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTriangle(t *testing.T) {
	g := graph.Init("a", "b", "c")
	g.ConnectAll([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"})

	want := strings.Join([]string{
		"a",
		`|\`,
		"b |",
		"|/",
		"c",
	}, "\n")
	if got := Render(g); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBraid(t *testing.T) {
	g := graph.Init("a", "b", "c", "e", "d")
	g.ConnectAll(
		[2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"},
		[2]string{"b", "e"}, [2]string{"c", "d"}, [2]string{"c", "e"},
		[2]string{"e", "d"},
	)

	want := strings.Join([]string{
		"a",
		`|\`,
		"b |",
		`|\|`,
		`|/\`,
		`|  \`,
		"c   |",
		`|\  |`,
		`| \/`,
		`| /\`,
		`|/  \`,
		`|    \`,
		"e     |",
		"|    /",
		"|   /",
		"|  /",
		"| /",
		"|/",
		"d",
	}, "\n")
	if got := Render(g); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWideLabels(t *testing.T) {
	g := graph.Init("api", "db")
	g.Connect("api", "db")

	want := strings.Join([]string{
		"api",
		"|",
		"db",
	}, "\n")
	if got := Render(g); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

// Structural checks that hold for any diagram: line count is rows plus
// blocks, node labels appear on their own lines, and no line carries
// trailing blanks.
func TestRenderShape(t *testing.T) {
	g := graph.Init("load", "parse", "check", "emit")
	g.ConnectAll(
		[2]string{"load", "parse"}, [2]string{"load", "check"},
		[2]string{"parse", "check"}, [2]string{"parse", "emit"},
		[2]string{"check", "emit"},
	)

	out := Render(g)
	lines := strings.Split(out, "\n")

	for _, label := range []string{"load", "parse", "check", "emit"} {
		found := false
		for _, line := range lines {
			if strings.HasPrefix(line, label) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("label %q missing from rendered diagram:\n%s", label, out)
		}
	}
	for i, line := range lines {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("line %d has trailing blanks: %q", i, line)
		}
	}
}
