package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matsen/citegraph/internal/citegraph"
	"github.com/matsen/citegraph/internal/paper"
)

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, sampleSnapshot(t)); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "digraph") {
		t.Errorf("output is not a digraph:\n%s", out)
	}
	if got := strings.Count(out, "->"); got != 3 {
		t.Errorf("output has %d edges, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, `"AAAAAAAAAAAA" -> "BBBBBBBBBBBB"`) {
		t.Errorf("missing seed edge:\n%s", out)
	}
	if !strings.Contains(out, "doublecircle") {
		t.Errorf("seed should be drawn as a double circle:\n%s", out)
	}
}

func TestWriteDOT_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, citegraph.Snapshot{}); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty snapshot produced edges:\n%s", buf.String())
	}
}

func TestDOTLabel(t *testing.T) {
	tests := []struct {
		name string
		node citegraph.SnapshotNode
		want string
	}{
		{"plain", citegraph.SnapshotNode{Index: 0, Title: "Foo"}, "0: Foo"},
		{"year", citegraph.SnapshotNode{Index: 3, Title: "Bar", Year: 2021}, "3: Bar (2021)"},
		{"entities decoded", citegraph.SnapshotNode{Index: 1, Title: "A &amp; B"}, "1: A & B"},
		{"quotes escaped", citegraph.SnapshotNode{Index: 2, Title: `The "best" tree`}, `2: The \"best\" tree`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.node.ID = paper.MustParseID("AAAAAAAAAAAA")
			if got := dotLabel(tt.node); got != tt.want {
				t.Errorf("dotLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
