package viz

import (
	"strconv"

	"github.com/matsen/citegraph/internal/citegraph"
)

// BuildGraph converts a citation graph snapshot into visualization data.
// Nodes keep snapshot order; edges are ordered by cited node then citer.
func BuildGraph(snap citegraph.Snapshot) *GraphData {
	g := &GraphData{
		Nodes: make([]Node, 0, len(snap.Nodes)),
		Edges: make([]Edge, 0),
	}

	for _, n := range snap.Nodes {
		g.Nodes = append(g.Nodes, newPaperNode(n))
	}

	for _, e := range snap.Edges() {
		g.Edges = append(g.Edges, Edge{
			Source: snap.Nodes[e[0]].ID.String(),
			Target: snap.Nodes[e[1]].ID.String(),
		})
	}

	return g
}

// newPaperNode creates a visualization node from a snapshot node.
func newPaperNode(n citegraph.SnapshotNode) Node {
	nodeType := NodeTypePaper
	if n.Level == 0 {
		nodeType = NodeTypeSeed
	}
	return Node{
		ID:            n.ID.String(),
		Type:          nodeType,
		Label:         strconv.Itoa(n.Index),
		Title:         n.Title,
		Year:          n.Year,
		Level:         n.Level,
		CitedByURL:    n.CitedByURL,
		Expanded:      n.Expanded,
		CitationCount: len(n.CitedBy),
	}
}
