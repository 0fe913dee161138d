// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("Dihedral: n=2 < min=3: …").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a size below the minimum of the requested
// constructor, e.g. Dihedral(2).
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrConstructFailed indicates a constructor that could not produce its
// generators: a nil Constructor or unparsable notation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes an error with the constructor name, keeping the
// wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
