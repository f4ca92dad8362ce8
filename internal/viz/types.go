// Package viz renders citation graph snapshots as interactive HTML.
package viz

// Node types.
const (
	NodeTypeSeed  = "seed"
	NodeTypePaper = "paper"
)

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a paper in the graph.
type Node struct {
	ID   string `json:"id"`   // Google Scholar result id
	Type string `json:"type"` // "seed" or "paper"

	// Display
	Label string `json:"label"` // insertion index, as shown in the terminal

	// Tooltip fields
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	Level      int    `json:"level"`
	CitedByURL string `json:"citedByUrl,omitempty"`
	Expanded   bool   `json:"expanded"`

	// Sizing
	CitationCount int `json:"citationCount"` // citers found in this graph
}

// Edge points from a cited paper to a paper that cites it.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
