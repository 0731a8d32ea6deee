package digraph

import "errors"

// ErrVertexNotFound indicates an edge endpoint that was never added with
// AddVertex. Every endpoint of every edge must already be a member of V.
var ErrVertexNotFound = errors.New("digraph: vertex not found")
