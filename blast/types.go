package blast

import "errors"

// ErrEmptyGraph indicates an operation that needs at least one mine was
// called on an empty graph.
var ErrEmptyGraph = errors.New("blast: graph has no mines")
