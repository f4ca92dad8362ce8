package citegraph

import (
	"fmt"

	"github.com/matsen/citegraph/internal/paper"
)

// ExpandResult counts what one expansion added to the graph.
type ExpandResult struct {
	NewNodes int `json:"new_nodes"`
	NewEdges int `json:"new_edges"`
}

// Expand merges the papers listed on a cited-by page into the graph as
// citers of the node at parent. citersHTML is the page fetched from that
// node's CitedByURL.
func (g *Graph) Expand(parent int, citersHTML string) (ExpandResult, error) {
	if err := g.checkExpandable(parent); err != nil {
		return ExpandResult{}, err
	}

	records, err := g.parser.ParsePage(citersHTML)
	if err != nil {
		return ExpandResult{}, fmt.Errorf("expanding node %d: %w", parent, err)
	}

	return g.ExpandRecords(parent, records)
}

// ExpandRecords merges already-parsed citer records into the graph.
//
// Records are applied in order. A record whose ID is already in the graph
// only gains an edge from parent, and only once; its level and metadata are
// left alone. A new ID is appended one level below parent. Records naming
// parent itself are ignored, and records without an ID are skipped with a
// warning.
func (g *Graph) ExpandRecords(parent int, records []paper.Record) (ExpandResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkExpandableLocked(parent); err != nil {
		return ExpandResult{}, err
	}

	var res ExpandResult
	parentID := g.nodes[parent].rec.ID
	childLevel := g.nodes[parent].level + 1

	for _, rec := range records {
		if rec.ID == parentID {
			continue
		}
		if rec.ID.IsZero() {
			fmt.Fprintf(g.warn, "Warning: node %d: skipping citer %q: %v\n", parent, rec.Title, paper.ErrMalformedID)
			continue
		}

		citer, known := g.index[rec.ID]
		if !known {
			citer = g.insert(rec, childLevel)
			res.NewNodes++
		}
		if g.addEdge(parent, citer) {
			res.NewEdges++
		}
	}

	g.nodes[parent].expanded = true

	if len(records) == 0 && g.strict {
		fmt.Fprintf(g.warn, "Warning: node %d: %v\n", parent, ErrParseEmpty)
	}

	return res, nil
}

// checkExpandable validates parent before any parsing happens.
func (g *Graph) checkExpandable(parent int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checkExpandableLocked(parent)
}

func (g *Graph) checkExpandableLocked(parent int) error {
	if parent < 0 || parent >= len(g.nodes) {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrNoSuchParent, parent, len(g.nodes))
	}
	if g.nodes[parent].rec.CitedByURL == "" {
		return fmt.Errorf("%w: node %d (%s)", ErrParentNotExpandable, parent, g.nodes[parent].rec.ID)
	}
	return nil
}
