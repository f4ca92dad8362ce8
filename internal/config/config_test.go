package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/abs/graph.db", "/abs/graph.db"},
		{"rel/graph.db", "rel/graph.db"},
		{"~/graph.db", filepath.Join(home, "graph.db")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "old.json")
	if err := os.WriteFile(existing, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "empty", path: "", want: ""},
		{name: "new file", path: filepath.Join(tmpDir, "graph.html"), want: filepath.Join(tmpDir, "graph.html")},
		{name: "overwrite", path: existing, want: existing},
		{name: "missing dir", path: filepath.Join(tmpDir, "nope", "graph.db"), wantErr: true},
		{name: "parent is file", path: filepath.Join(existing, "graph.db"), wantErr: true},
		{name: "path is dir", path: tmpDir, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateOutputPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
