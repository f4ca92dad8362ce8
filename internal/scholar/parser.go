// Package scholar scrapes Google Scholar result pages.
//
// The parser turns a results or cited-by page into paper records, the URL
// helpers build the addresses those pages live at, and Client fetches them.
package scholar

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/matsen/citegraph/internal/paper"
	"golang.org/x/net/html"
)

// CSS selectors for the load-bearing parts of a result block.
const (
	ResultSelector     = "div.gs_ri"
	TitleSelector      = "h3.gs_rt > a"
	PubInfoSelector    = "div.gs_a"
	ActionLinkSelector = "div.gs_fl > a"
)

// MinYear is the exclusive lower bound for an integer to be taken as a year.
const MinYear = 1000

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	integerPattern = regexp.MustCompile(`-?\d+`)
)

// Parser extracts paper records from Google Scholar HTML.
// A Parser holds no per-page state and may be reused.
type Parser struct {
	warn io.Writer
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithWarnings sets where skipped-result warnings are written.
func WithWarnings(w io.Writer) ParserOption {
	return func(p *Parser) {
		p.warn = w
	}
}

// NewParser creates a parser that warns on stderr unless configured otherwise.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{warn: os.Stderr}
	for _, opt := range opts {
		opt(p)
	}
	if p.warn == nil {
		p.warn = io.Discard
	}
	return p
}

// ParsePage parses html with a default parser.
func ParsePage(html string) ([]paper.Record, error) {
	return NewParser().ParsePage(html)
}

// ParsePage extracts one record per result block, in document order.
// Blocks without a usable identifier are skipped with a warning; a page with
// no results yields an empty, non-nil slice.
func (p *Parser) ParsePage(html string) ([]paper.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}

	records := make([]paper.Record, 0)
	doc.Find(ResultSelector).Each(func(_ int, result *goquery.Selection) {
		rec, err := parseResult(result)
		if err != nil {
			fmt.Fprintf(p.warn, "Warning: skipping result: %v\n", err)
			return
		}
		records = append(records, rec)
	})

	return records, nil
}

// parseResult builds a record from a single result container.
func parseResult(result *goquery.Selection) (paper.Record, error) {
	anchor := result.Find(TitleSelector).First()
	title := StripTags(innerHTML(anchor))

	idAttr, _ := anchor.Attr("id")
	id, err := paper.ParseID(idAttr)
	if err != nil {
		return paper.Record{}, fmt.Errorf("title %q: %w", title, err)
	}

	pubInfo := StripTags(innerHTML(result.Find(PubInfoSelector).First()))

	return paper.Record{
		ID:         id,
		Title:      title,
		Year:       FindYear(pubInfo),
		CitedByURL: findCitedByURL(result),
	}, nil
}

// findCitedByURL returns the absolute URL of the first cites link in the
// result's action bar, or "" if there is none.
func findCitedByURL(result *goquery.Selection) string {
	var url string
	result.Find(ActionLinkSelector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if ok && strings.HasPrefix(href, CitesPrefix) {
			url = CitedByURL(href)
			return false
		}
		return true
	})
	return url
}

// innerHTML serializes the children of the first node in s, or "".
// Text escapes only '&', '<', '>' and U+00A0 and attribute values only '&',
// '"' and U+00A0, so quotes and apostrophes in titles survive unchanged.
func innerHTML(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	parent := s.Get(0)
	var sb strings.Builder
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		writeNode(&sb, c, isRawText(parent))
	}
	return sb.String()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", `"`, "&quot;")
)

// voidElements have no end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// isRawText reports whether n's text children are serialized unescaped.
func isRawText(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext":
		return true
	}
	return false
}

func writeNode(sb *strings.Builder, n *html.Node, raw bool) {
	switch n.Type {
	case html.TextNode:
		if raw {
			sb.WriteString(n.Data)
		} else {
			sb.WriteString(textEscaper.Replace(n.Data))
		}
	case html.CommentNode:
		sb.WriteString("<!--" + n.Data + "-->")
	case html.ElementNode:
		sb.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + key
			}
			sb.WriteString(" " + key + `="` + attrEscaper.Replace(a.Val) + `"`)
		}
		sb.WriteString(">")
		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(sb, c, isRawText(n))
		}
		sb.WriteString("</" + n.Data + ">")
	}
}

// StripTags removes every <...> tag, leaving the text between tags as-is.
// Entities are not decoded.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// FindYear returns the first integer in text greater than MinYear, or 0.
// A leading '-' is part of the integer, so negative values never qualify.
func FindYear(text string) int {
	for _, lit := range integerPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(lit)
		if err != nil {
			continue // out of range for int
		}
		if n > MinYear {
			return n
		}
	}
	return 0
}
