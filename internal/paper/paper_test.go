package paper

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"exactly twelve bytes", "AAAAAAAAAAAA", false},
		{"scholar style id", "u5HHmVD_uO8J", false},
		{"too short", "SHORT", true},
		{"too long", "AAAAAAAAAAAAA", true},
		{"empty", "", true},
		// 6 two-byte runes are 12 bytes
		{"multibyte counted in bytes", "éééééé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) expected error", tt.input)
				}
				if !errors.Is(err, ErrMalformedID) {
					t.Errorf("ParseID(%q) error = %v, want ErrMalformedID", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.input, err)
			}
			if id.String() != tt.input {
				t.Errorf("String() = %q, want %q", id.String(), tt.input)
			}
		})
	}
}

func TestID_Equality(t *testing.T) {
	a := MustParseID("BBBBBBBBBBBB")
	b := MustParseID("BBBBBBBBBBBB")
	c := MustParseID("CCCCCCCCCCCC")

	if a != b {
		t.Error("IDs with identical bytes should be equal")
	}
	if a == c {
		t.Error("IDs with different bytes should differ")
	}

	seen := map[ID]int{a: 1}
	if seen[b] != 1 {
		t.Error("equal IDs should hash to the same map entry")
	}
}

func TestID_IsZero(t *testing.T) {
	var zero ID
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if MustParseID("AAAAAAAAAAAA").IsZero() {
		t.Error("parsed ID should not report IsZero")
	}
}

func TestRecord_JSON(t *testing.T) {
	rec := Record{
		ID:         MustParseID("AAAAAAAAAAAA"),
		Title:      "Foo",
		Year:       2019,
		CitedByURL: "https://scholar.google.com//scholar?cites=1",
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"AAAAAAAAAAAA","title":"Foo","year":2019,"cited_by_url":"https://scholar.google.com//scholar?cites=1"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var bad Record
	if err := json.Unmarshal([]byte(`{"id":"SHORT"}`), &bad); err == nil {
		t.Error("Unmarshal with short id should fail")
	}
}

func TestRecord_Expandable(t *testing.T) {
	if (Record{}).Expandable() {
		t.Error("record without cited-by URL should not be expandable")
	}
	if !(Record{CitedByURL: "https://scholar.google.com//scholar?cites=1"}).Expandable() {
		t.Error("record with cited-by URL should be expandable")
	}
}
