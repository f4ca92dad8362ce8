// Package explore runs the interactive citation-graph session: search for a
// seed paper, then repeatedly pick a node and pull in the papers citing it.
package explore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matsen/citegraph/internal/citegraph"
	"github.com/matsen/citegraph/internal/paper"
	"github.com/matsen/citegraph/internal/scholar"
)

var (
	// ErrNoResults is returned when the search page lists no usable papers.
	ErrNoResults = errors.New("no results")

	// ErrFetch wraps failures fetching the search page.
	ErrFetch = errors.New("fetch failed")
)

// Session holds the state of one interactive run.
type Session struct {
	fetcher scholar.Fetcher
	graph   *citegraph.Graph
	in      *bufio.Reader
	out     io.Writer
	warn    io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithInput sets where answers to prompts are read from.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		s.in = bufio.NewReader(r)
	}
}

// WithOutput sets where prompts and the graph are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithWarnings sets where recoverable failures are reported.
func WithWarnings(w io.Writer) Option {
	return func(s *Session) {
		s.warn = w
	}
}

// WithGraph sets the graph to grow. It must be empty.
func WithGraph(g *citegraph.Graph) Option {
	return func(s *Session) {
		s.graph = g
	}
}

// New creates a session that fetches pages through f.
func New(f scholar.Fetcher, opts ...Option) *Session {
	s := &Session{
		fetcher: f,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		warn:    os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		s.graph = citegraph.New(citegraph.WithWarnings(s.warn))
	}
	return s
}

// Graph returns the graph the session is growing.
func (s *Session) Graph() *citegraph.Graph {
	return s.graph
}

// Run searches for term, asks for a seed and then expands nodes until the
// user enters an empty line or input ends. An empty term is prompted for.
func (s *Session) Run(ctx context.Context, term string) error {
	if term == "" {
		line, ok := s.prompt("Search term: ")
		if !ok || line == "" {
			return nil
		}
		term = line
	}

	candidates, err := s.search(ctx, term)
	if err != nil {
		return err
	}

	seed, ok := s.chooseSeed(candidates)
	if !ok {
		return nil
	}
	if err := s.graph.AddSeed(seed); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.graph.Snapshot())
		line, ok := s.prompt("Expand node (empty to finish): ")
		if !ok || line == "" {
			return nil
		}

		i, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "Not a node index: %q\n", line)
			continue
		}
		s.expand(ctx, i)
	}
}

func (s *Session) search(ctx context.Context, term string) ([]paper.Record, error) {
	html, err := s.fetcher.Fetch(ctx, scholar.SearchURL(term))
	if err != nil {
		return nil, fmt.Errorf("%w: searching %q: %w", ErrFetch, term, err)
	}

	candidates, err := s.graph.SeedFromPage(html)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, term)
	}
	return candidates, nil
}

// chooseSeed lists candidates and reads an index until a valid one is given.
func (s *Session) chooseSeed(candidates []paper.Record) (paper.Record, bool) {
	for i, rec := range candidates {
		fmt.Fprintf(s.out, "  [%d] %s", i, rec.Title)
		if rec.Year != 0 {
			fmt.Fprintf(s.out, " (%d)", rec.Year)
		}
		fmt.Fprintln(s.out)
	}

	for {
		line, ok := s.prompt(fmt.Sprintf("Seed paper [0-%d]: ", len(candidates)-1))
		if !ok || line == "" {
			return paper.Record{}, false
		}
		i, err := strconv.Atoi(line)
		if err != nil || i < 0 || i >= len(candidates) {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number from 0 to %d.\n", len(candidates)-1)
			continue
		}
		return candidates[i], true
	}
}

// expand fetches the cited-by page of node i and merges it. Failures are
// reported and leave the graph unchanged.
func (s *Session) expand(ctx context.Context, i int) {
	node, ok := s.graph.NodeAt(i)
	if !ok {
		fmt.Fprintf(s.out, "No node %d.\n", i)
		return
	}
	if !node.Expandable() {
		fmt.Fprintf(s.out, "Node %d has no cited-by link.\n", i)
		return
	}

	html, err := s.fetcher.Fetch(ctx, node.CitedByURL)
	if err != nil {
		fmt.Fprintf(s.warn, "Warning: fetching citers of node %d: %v\n", i, err)
		return
	}

	res, err := s.graph.Expand(i, html)
	if err != nil {
		fmt.Fprintf(s.warn, "Warning: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %d papers and %d citations.\n", res.NewNodes, res.NewEdges)
}

// prompt prints p and reads one trimmed line. ok is false once input is
// exhausted.
func (s *Session) prompt(p string) (line string, ok bool) {
	fmt.Fprint(s.out, p)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
