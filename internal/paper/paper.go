// Package paper defines the core domain types for scraped Google Scholar papers.
package paper

import (
	"errors"
	"fmt"
)

// IDLength is the fixed width of a Google Scholar result identifier.
const IDLength = 12

// ErrMalformedID is returned when a string cannot be used as a paper ID.
var ErrMalformedID = errors.New("malformed paper id")

// ID is the opaque identifier Google Scholar attaches to the title anchor of
// each result. Two IDs are equal iff their bytes are equal.
type ID [IDLength]byte

// ParseID converts the anchor id attribute into an ID.
// It succeeds only when s is exactly IDLength bytes long.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != IDLength {
		return id, fmt.Errorf("%w: %q has length %d, want %d", ErrMalformedID, s, len(s), IDLength)
	}
	copy(id[:], s)
	return id, nil
}

// MustParseID is like ParseID but panics on error. Intended for tests and constants.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the raw bytes as text.
func (id ID) String() string {
	return string(id[:])
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id == ID{}
}

// MarshalText encodes the ID as its raw text.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes an ID from text, rejecting wrong lengths.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Record is one result parsed from a results or cited-by page.
type Record struct {
	ID         ID     `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`                   // 0 if unknown
	CitedByURL string `json:"cited_by_url,omitempty"` // empty if the page advertised none
}

// Expandable reports whether the record advertises a cited-by listing.
func (r Record) Expandable() bool {
	return r.CitedByURL != ""
}
