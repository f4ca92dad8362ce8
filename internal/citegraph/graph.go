// Package citegraph holds the citation graph grown from a seed paper.
//
// Nodes live in an arena indexed by insertion order; that index is the public
// handle used by callers. Edges run from a paper to the papers that cite it
// and are stored on the cited paper as lists of arena indices. Each node's
// level is its distance from the seed at the moment it was first inserted and
// never changes afterwards.
package citegraph

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/matsen/citegraph/internal/paper"
	"github.com/matsen/citegraph/internal/scholar"
)

// node is the arena entry for one paper.
type node struct {
	rec      paper.Record
	level    int
	citers   []int            // indices of citing nodes, in discovery order
	citerSet map[int]struct{} // membership for citers
	expanded bool
}

// Node is a read-only copy of a paper in the graph.
type Node struct {
	ID         paper.ID
	Title      string
	Year       int
	CitedByURL string
	CitedBy    []paper.ID
	Level      int
	Expanded   bool
}

// Expandable reports whether the node advertises a cited-by page.
func (n Node) Expandable() bool {
	return n.CitedByURL != ""
}

// Graph is the citation graph. It is safe for use by one goroutine at a time;
// an internal mutex serialises callers that share it anyway.
type Graph struct {
	mu               sync.Mutex
	nodes            []node
	index            map[paper.ID]int
	levelPopulations []int

	parser *scholar.Parser
	warn   io.Writer
	strict bool
}

// Option configures a Graph.
type Option func(*Graph)

// WithParser sets the parser used by SeedFromPage and Expand.
func WithParser(p *scholar.Parser) Option {
	return func(g *Graph) {
		g.parser = p
	}
}

// WithWarnings sets where graph warnings are written.
func WithWarnings(w io.Writer) Option {
	return func(g *Graph) {
		g.warn = w
	}
}

// WithStrict enables warnings for cited-by pages that yield no results.
func WithStrict(strict bool) Option {
	return func(g *Graph) {
		g.strict = strict
	}
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		index: make(map[paper.ID]int),
		warn:  os.Stderr,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.warn == nil {
		g.warn = io.Discard
	}
	if g.parser == nil {
		g.parser = scholar.NewParser(scholar.WithWarnings(g.warn))
	}
	return g
}

// SeedFromPage parses a search results page and returns the candidate seeds.
// The graph stays empty until one of them is passed to AddSeed.
func (g *Graph) SeedFromPage(html string) ([]paper.Record, error) {
	return g.parser.ParsePage(html)
}

// AddSeed inserts rec as the root of the graph at index 0, level 0.
func (g *Graph) AddSeed(rec paper.Record) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) > 0 {
		return fmt.Errorf("%w: seed is %s", ErrAlreadySeeded, g.nodes[0].rec.ID)
	}
	if rec.ID.IsZero() {
		return fmt.Errorf("%w: seed %q has no ID", paper.ErrMalformedID, rec.Title)
	}
	g.insert(rec, 0)
	return nil
}

// Lookup returns the index of the node with the given ID.
func (g *Graph) Lookup(id paper.ID) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[id]
	return i, ok
}

// NodeAt returns a copy of the node at index i.
func (g *Graph) NodeAt(i int) (Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.nodes) {
		return Node{}, false
	}
	return g.view(i), true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// IsEmpty returns true if no seed has been added.
func (g *Graph) IsEmpty() bool {
	return g.Len() == 0
}

// LevelPopulations returns a copy of the per-level node counts.
func (g *Graph) LevelPopulations() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int(nil), g.levelPopulations...)
}

// insert appends rec at the given level and returns its index.
// The caller holds g.mu and has checked rec.ID is not present.
func (g *Graph) insert(rec paper.Record, level int) int {
	i := len(g.nodes)
	g.nodes = append(g.nodes, node{rec: rec, level: level})
	g.index[rec.ID] = i

	for len(g.levelPopulations) <= level {
		g.levelPopulations = append(g.levelPopulations, 0)
	}
	g.levelPopulations[level]++
	return i
}

// addEdge records citer as citing parent. It reports whether the edge is new.
func (g *Graph) addEdge(parent, citer int) bool {
	n := &g.nodes[parent]
	if _, ok := n.citerSet[citer]; ok {
		return false
	}
	if n.citerSet == nil {
		n.citerSet = make(map[int]struct{})
	}
	n.citerSet[citer] = struct{}{}
	n.citers = append(n.citers, citer)
	return true
}

// view builds the public copy of node i. The caller holds g.mu.
func (g *Graph) view(i int) Node {
	n := g.nodes[i]
	citedBy := make([]paper.ID, len(n.citers))
	for j, c := range n.citers {
		citedBy[j] = g.nodes[c].rec.ID
	}
	return Node{
		ID:         n.rec.ID,
		Title:      n.rec.Title,
		Year:       n.rec.Year,
		CitedByURL: n.rec.CitedByURL,
		CitedBy:    citedBy,
		Level:      n.level,
		Expanded:   n.expanded,
	}
}
