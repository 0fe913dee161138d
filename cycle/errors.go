package cycle

import "errors"

var (
	// ErrNegativeIndex indicates a cycle that references an index below zero.
	ErrNegativeIndex = errors.New("cycle: negative index")

	// ErrRepeatedIndex indicates a single cycle that lists the same index twice,
	// e.g. (0 1 0). Distinct cycles may share indices; a single cycle may not.
	ErrRepeatedIndex = errors.New("cycle: index repeated within a cycle")

	// ErrNotBijective indicates an image slice that is not a permutation of 0..n-1.
	ErrNotBijective = errors.New("cycle: image is not a bijection")

	// ErrSyntax wraps every parse failure of the textual notation.
	ErrSyntax = errors.New("cycle: invalid cycle notation")
)
