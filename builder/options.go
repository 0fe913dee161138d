// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return errors and never panic.

package builder

import "fmt"

// BuilderOption customizes constructors by mutating a builderConfig before
// any generator is emitted.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithOffset makes constructors act on points k..k+n-1 instead of 0..n-1.
// Panics on k < 0.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithOffset(%d)", k))
	}
	return func(c *builderConfig) {
		c.offset = k
	}
}

// WithSign attaches sign (+1 or -1) to every odd generator a built-in
// constructor emits. Antisymmetric and Parsed ignore it. Panics on any other
// value.
func WithSign(sign int) BuilderOption {
	if sign != 1 && sign != -1 {
		panic(fmt.Sprintf("builder: WithSign(%d)", sign))
	}
	return func(c *builderConfig) {
		c.oddSign = sign
	}
}
