package scholar

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/matsen/citegraph/internal/paper"
	"github.com/matsen/citegraph/internal/scholar/scholartest"
)

func quietParser() *Parser {
	return NewParser(WithWarnings(&bytes.Buffer{}))
}

func TestParsePage_SingleResult(t *testing.T) {
	html := scholartest.Page(scholartest.Result{
		ID:      "AAAAAAAAAAAA",
		Title:   "Foo",
		PubInfo: "J Doe - Nature, 2019 - nature.com",
	})

	records, err := quietParser().ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}

	want := []paper.Record{{ID: paper.MustParseID("AAAAAAAAAAAA"), Title: "Foo", Year: 2019}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("ParsePage() = %+v, want %+v", records, want)
	}
}

func TestParsePage_DocumentOrderAndCitedBy(t *testing.T) {
	results := []scholartest.Result{
		{ID: "BBBBBBBBBBBB", Title: "Second paper", PubInfo: "A Author - 2020", Cites: "111"},
		{ID: "CCCCCCCCCCCC", Title: "Third paper", PubInfo: "B Author - 2021", Cites: "222"},
		{ID: "DDDDDDDDDDDD", Title: "Fourth paper", PubInfo: "C Author - 2022"},
	}

	records, err := quietParser().ParsePage(scholartest.Page(results...))
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if len(records) != len(results) {
		t.Fatalf("got %d records, want %d", len(records), len(results))
	}

	for i, r := range results {
		if records[i].ID.String() != r.ID {
			t.Errorf("records[%d].ID = %s, want %s", i, records[i].ID, r.ID)
		}
		if records[i].CitedByURL != r.CitedByURL() {
			t.Errorf("records[%d].CitedByURL = %q, want %q", i, records[i].CitedByURL, r.CitedByURL())
		}
	}
	if records[2].Expandable() {
		t.Error("result without a cites link should not be expandable")
	}
}

func TestParsePage_CitedByIgnoresOtherLinks(t *testing.T) {
	html := scholartest.Page(scholartest.Result{
		ID:    "AAAAAAAAAAAA",
		Title: "Foo",
		Links: []string{"/scholar?q=info:x", "/citations?user=abc", "https://scholar.google.com/scholar?cites=9"},
		Cites: "42",
	})

	records, err := quietParser().ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := "https://scholar.google.com//scholar?cites=42&as_sdt=5,43&sciodt=0,43&hl=en"
	if records[0].CitedByURL != want {
		t.Errorf("CitedByURL = %q, want %q", records[0].CitedByURL, want)
	}
}

func TestParsePage_MalformedIDSkippedWithWarning(t *testing.T) {
	html := scholartest.Page(
		scholartest.Result{ID: "SHORT", Title: "Short id paper", PubInfo: "2001"},
		scholartest.Result{Title: "No id paper", PubInfo: "2002"},
		scholartest.Result{ID: "EEEEEEEEEEEE", Title: "Valid paper", PubInfo: "2003"},
	)

	var warnings bytes.Buffer
	records, err := NewParser(WithWarnings(&warnings)).ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}

	if len(records) != 1 || records[0].ID.String() != "EEEEEEEEEEEE" {
		t.Fatalf("ParsePage() = %+v, want only EEEEEEEEEEEE", records)
	}

	out := warnings.String()
	if strings.Count(out, "Warning:") != 2 {
		t.Errorf("expected 2 warnings, got:\n%s", out)
	}
	if !strings.Contains(out, "Short id paper") || !strings.Contains(out, "No id paper") {
		t.Errorf("warnings should name the skipped titles, got:\n%s", out)
	}
}

func TestParsePage_MissingPubInfo(t *testing.T) {
	html := scholartest.Page(scholartest.Result{ID: "AAAAAAAAAAAA", Title: "Foo", Cites: "7"})

	records, err := quietParser().ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Year != 0 {
		t.Errorf("Year = %d, want 0", records[0].Year)
	}
	if records[0].Title != "Foo" || !records[0].Expandable() {
		t.Errorf("record otherwise incomplete: %+v", records[0])
	}
}

func TestParsePage_TitleMarkupStripped(t *testing.T) {
	html := scholartest.Page(scholartest.Result{
		ID:    "AAAAAAAAAAAA",
		Title: "Deep <b>learning</b> for <i>protein</i> folding &amp; design",
	})

	records, err := quietParser().ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	want := "Deep learning for protein folding &amp; design"
	if records[0].Title != want {
		t.Errorf("Title = %q, want %q", records[0].Title, want)
	}
}

func TestParsePage_TitleTextVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"apostrophe", "Darwin's Origin", "Darwin's Origin"},
		{"double quotes", `The "best" tree`, `The "best" tree`},
		{"mixed with entity", `Darwin's "Origin" &amp; more`, `Darwin's "Origin" &amp; more`},
		{"quotes inside markup", `<b>Darwin's</b> "<i>Origin</i>"`, `Darwin's "Origin"`},
		{"escaped angle brackets", "a &lt; b", "a &lt; b"},
		{"non-breaking space", "a&nbsp;b", "a&nbsp;b"},
		{"comment", "a<!-- note -->b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := scholartest.Page(scholartest.Result{ID: "AAAAAAAAAAAA", Title: tt.title})

			records, err := quietParser().ParsePage(html)
			if err != nil {
				t.Fatalf("ParsePage() error = %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Title != tt.want {
				t.Errorf("Title = %q, want %q", records[0].Title, tt.want)
			}
		})
	}
}

func TestParsePage_Empty(t *testing.T) {
	for _, html := range []string{"", "<html><body><p>No results</p></body></html>"} {
		records, err := quietParser().ParsePage(html)
		if err != nil {
			t.Fatalf("ParsePage(%q) error = %v", html, err)
		}
		if records == nil || len(records) != 0 {
			t.Errorf("ParsePage(%q) = %v, want empty non-nil slice", html, records)
		}
	}
}

func TestParsePage_Deterministic(t *testing.T) {
	html := scholartest.Page(
		scholartest.Result{ID: "AAAAAAAAAAAA", Title: "One", PubInfo: "1999", Cites: "1"},
		scholartest.Result{ID: "BBBBBBBBBBBB", Title: "Two", PubInfo: "2005"},
	)

	first, _ := quietParser().ParsePage(html)
	second, _ := quietParser().ParsePage(html)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ParsePage not deterministic: %+v vs %+v", first, second)
	}
}

func TestFindYear(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"typical pub info", "J Doe, Nature, -42, 1998 - Elsevier", 1998},
		{"first plausible wins", "Vol 12, 2004, 2010", 2004},
		{"negative never matches", "-2019 only", 0},
		{"boundary excluded", "page 1000", 0},
		{"boundary plus one", "1001", 1001},
		{"no digits", "J Doe - Nature", 0},
		{"empty", "", 0},
		{"overflow skipped", "99999999999999999999999 then 1987", 1987},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindYear(tt.text); got != tt.want {
				t.Errorf("FindYear(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParsePage_YearFromMarkup(t *testing.T) {
	html := scholartest.Page(scholartest.Result{
		ID:      "AAAAAAAAAAAA",
		Title:   "Foo",
		PubInfo: "J Doe, <i>Nature</i>, -42, 1998 - Elsevier",
	})

	records, err := quietParser().ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if records[0].Year != 1998 {
		t.Errorf("Year = %d, want 1998", records[0].Year)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>bold</b> text", "bold text"},
		{`<a href="x">link</a><br/>after`, "linkafter"},
		{"a &lt; b", "a &lt; b"},
		{"unclosed <tag", "unclosed <tag"},
	}

	for _, tt := range tests {
		if got := StripTags(tt.in); got != tt.want {
			t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
