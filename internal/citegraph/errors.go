package citegraph

import "errors"

// Errors returned by graph operations. None of them leave the graph partially mutated.
var (
	ErrAlreadySeeded       = errors.New("graph already has a seed")
	ErrNoSuchParent        = errors.New("no node at that index")
	ErrParentNotExpandable = errors.New("node has no cited-by URL")
	ErrParseEmpty          = errors.New("cited-by page yielded no results")
)
