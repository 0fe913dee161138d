package perm

import "errors"

// Sentinel errors. Match with errors.Is; never compare strings.
var (
	// ErrNotBijective indicates an image that is not a permutation of 0..n-1.
	ErrNotBijective = errors.New("perm: image is not a bijection")

	// ErrInvalidSign indicates a sign other than -1 or +1.
	ErrInvalidSign = errors.New("perm: sign must be -1 or +1")

	// ErrShiftUnderflow indicates a Shift that would relabel a moved point
	// to a negative index.
	ErrShiftUnderflow = errors.New("perm: shift produces a negative index")

	// ErrShiftCollision indicates a Shift that would relabel two moved points
	// onto the same index, i.e. the shifted-away range was not fixed.
	ErrShiftCollision = errors.New("perm: shift relabels two points onto one index")
)

const panicSetSign = "perm: SetSign: sign must be -1 or +1"
