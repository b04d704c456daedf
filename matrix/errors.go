// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency; callers
// match with errors.Is, wrappers add context with fmt.Errorf("...: %w").

package matrix

import "errors"

var (
	// ErrNegativeSize is returned when a matrix of negative order is requested.
	ErrNegativeSize = errors.New("matrix: size must be >= 0")

	// ErrOutOfRange indicates that an index (row, column or removal target)
	// is outside [0, n). Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
