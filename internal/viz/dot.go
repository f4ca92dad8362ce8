package viz

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/matsen/citegraph/internal/citegraph"
)

// dotLabelReplacer escapes characters that would end a quoted DOT attribute.
var dotLabelReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// WriteDOT renders snap as a Graphviz digraph. Edges run from each cited
// paper to its citers; vertices are keyed by Scholar ID and labelled with the
// terminal index and title.
func WriteDOT(w io.Writer, snap citegraph.Snapshot) error {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, n := range snap.Nodes {
		attrs := []func(*graph.VertexProperties){
			graph.VertexAttribute("label", dotLabel(n)),
		}
		if n.Level == 0 {
			attrs = append(attrs, graph.VertexAttribute("shape", "doublecircle"))
		}
		if err := g.AddVertex(n.ID.String(), attrs...); err != nil {
			return fmt.Errorf("adding paper %s: %w", n.ID, err)
		}
	}

	for _, e := range snap.Edges() {
		cited, citer := snap.Nodes[e[0]].ID.String(), snap.Nodes[e[1]].ID.String()
		if err := g.AddEdge(cited, citer); err != nil {
			return fmt.Errorf("adding citation %s->%s: %w", cited, citer, err)
		}
	}

	return draw.DOT(g, w)
}

func dotLabel(n citegraph.SnapshotNode) string {
	label := fmt.Sprintf("%d: %s", n.Index, html.UnescapeString(n.Title))
	if n.Year != 0 {
		label += fmt.Sprintf(" (%d)", n.Year)
	}
	return dotLabelReplacer.Replace(label)
}
