package citegraph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/citegraph/internal/paper"
)

// Snapshot is a point-in-time copy of the graph for display and export.
type Snapshot struct {
	Nodes            []SnapshotNode `json:"nodes"`
	LevelPopulations []int          `json:"level_populations"`
}

// SnapshotNode is one paper in a Snapshot.
type SnapshotNode struct {
	Index      int      `json:"index"`
	ID         paper.ID `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year,omitempty"`
	Level      int      `json:"level"`
	CitedByURL string   `json:"cited_by_url,omitempty"`
	CitedBy    []int    `json:"cited_by"` // sorted indices of citing nodes
	Expandable bool     `json:"expandable"`
	Expanded   bool     `json:"expanded"`
}

// Snapshot copies the current graph state.
func (g *Graph) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Nodes:            make([]SnapshotNode, len(g.nodes)),
		LevelPopulations: append([]int{}, g.levelPopulations...),
	}
	for i, n := range g.nodes {
		citedBy := slices.Clone(n.citers)
		if citedBy == nil {
			citedBy = []int{}
		}
		slices.Sort(citedBy)

		s.Nodes[i] = SnapshotNode{
			Index:      i,
			ID:         n.rec.ID,
			Title:      n.rec.Title,
			Year:       n.rec.Year,
			Level:      n.level,
			CitedByURL: n.rec.CitedByURL,
			CitedBy:    citedBy,
			Expandable: n.rec.Expandable(),
			Expanded:   n.expanded,
		}
	}
	return s
}

// Edges returns every (cited, citer) index pair, ordered by cited then citer.
func (s Snapshot) Edges() [][2]int {
	var edges [][2]int
	for _, n := range s.Nodes {
		for _, c := range n.CitedBy {
			edges = append(edges, [2]int{n.Index, c})
		}
	}
	return edges
}

// String renders the snapshot as indented text for the terminal.
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Citation Graph (%d papers, levels %v) {\n", len(s.Nodes), s.LevelPopulations)
	for _, n := range s.Nodes {
		fmt.Fprintf(&sb, "    %d -----\n", n.Index)
		fmt.Fprintf(&sb, "      Title: %s\n", n.Title)
		fmt.Fprintf(&sb, "      ID: %s\n", n.ID)
		if n.Year != 0 {
			fmt.Fprintf(&sb, "      Year: %d\n", n.Year)
		}
		if len(n.CitedBy) > 0 {
			fmt.Fprintf(&sb, "      Cited by: %s\n", joinInts(n.CitedBy))
		}
		fmt.Fprintf(&sb, "      Can be expanded: %t\n", n.Expandable)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
