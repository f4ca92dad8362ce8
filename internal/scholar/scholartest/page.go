// Package scholartest builds Google Scholar result pages for tests.
package scholartest

import (
	"fmt"
	"strings"
)

// Result describes one result block on a fixture page.
type Result struct {
	ID      string // title anchor id; omitted from the markup when empty
	Title   string // raw HTML placed inside the title anchor
	PubInfo string // raw HTML for div.gs_a; the div is omitted when empty
	Cites   string // cites query value; the "Cited by" link is omitted when empty
	Links   []string
}

// Block renders r the way Scholar lays out a single result.
func (r Result) Block() string {
	var sb strings.Builder
	sb.WriteString(`<div class="gs_r gs_or gs_scl"><div class="gs_ri">`)

	sb.WriteString(`<h3 class="gs_rt"><span class="gs_ctg2">[PDF]</span> `)
	if r.ID != "" {
		fmt.Fprintf(&sb, `<a id="%s" href="https://example.org/paper">%s</a>`, r.ID, r.Title)
	} else {
		fmt.Fprintf(&sb, `<a href="https://example.org/paper">%s</a>`, r.Title)
	}
	sb.WriteString(`</h3>`)

	if r.PubInfo != "" {
		fmt.Fprintf(&sb, `<div class="gs_a">%s</div>`, r.PubInfo)
	}
	sb.WriteString(`<div class="gs_rs">Snippet text.</div>`)

	sb.WriteString(`<div class="gs_fl gs_flb">`)
	sb.WriteString(`<a href="javascript:void(0)" class="gs_or_sav">Save</a>`)
	for _, href := range r.Links {
		fmt.Fprintf(&sb, `<a href="%s">Link</a>`, href)
	}
	if r.Cites != "" {
		fmt.Fprintf(&sb, `<a href="/scholar?cites=%s&amp;as_sdt=5,43&amp;sciodt=0,43&amp;hl=en">Cited by 12</a>`, r.Cites)
	}
	sb.WriteString(`<a href="/scholar?q=related:x:scholar.google.com/">Related articles</a>`)
	sb.WriteString(`</div></div></div>`)
	return sb.String()
}

// CitedByURL is the absolute URL the parser produces for r.
func (r Result) CitedByURL() string {
	if r.Cites == "" {
		return ""
	}
	return "https://scholar.google.com//scholar?cites=" + r.Cites + "&as_sdt=5,43&sciodt=0,43&hl=en"
}

// Page wraps result blocks in a minimal results document.
func Page(results ...Result) string {
	var sb strings.Builder
	sb.WriteString(`<!doctype html><html><head><title>Google Scholar</title></head><body>`)
	sb.WriteString(`<div id="gs_res_ccl_mid">`)
	for _, r := range results {
		sb.WriteString(r.Block())
	}
	sb.WriteString(`</div></body></html>`)
	return sb.String()
}
