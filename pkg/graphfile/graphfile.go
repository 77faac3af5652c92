// Package graphfile is the canonical file format for string-labeled graphs.
//
// The format is plain JSON and designed for round-trip fidelity: export,
// re-import, and export again produces identical node and edge sequences.
// Every written document carries a generated UUID so exports can be told
// apart after the fact.
package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/trellis-dev/trellis/pkg/graph"
)

// Document is the serialized form of a graph. Nodes keep their insertion
// order; edges keep source insertion order and, per source, edge insertion
// order. Loading a document replays both sequences, so the round trip
// preserves every ordering guarantee of the live graph.
type Document struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name,omitempty"`
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Edge is one directed edge between two node labels.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromGraph converts a graph to its document form and stamps a fresh ID.
func FromGraph(g *graph.Graph[string]) Document {
	doc := Document{
		ID:    uuid.NewString(),
		Nodes: g.Labels(),
		Edges: make([]Edge, 0, len(g.Edges())),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e[0], To: e[1]})
	}
	return doc
}

// ToGraph builds a graph from a document. Nodes are inserted first, in
// document order, then edges are replayed with bulk-construction semantics:
// an edge naming an absent node, a self loop, or an edge that would close a
// cycle is skipped without error.
func ToGraph(doc Document) *graph.Graph[string] {
	g := graph.Init(doc.Nodes...)
	for _, e := range doc.Edges {
		g.Connect(e.From, e.To)
	}
	return g
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *graph.Graph[string]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to w.
func Write(g *graph.Graph[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file created with 0644 permissions.
func WriteFile(g *graph.Graph[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON document from r into a graph.
func Read(r io.Reader) (*graph.Graph[string], error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(doc), nil
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*graph.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
