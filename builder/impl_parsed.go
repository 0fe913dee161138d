// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// impl_parsed.go: Parsed(notation...) constructor.
//
// Contract:
//   • Every string is read with perm.Parse ("(0 1)(2 3)", "-(4 5)").
//   • Signs are taken from the notation; WithSign does not apply.
//   • Points are shifted by cfg.offset.

package builder

import (
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// Parsed returns a Constructor emitting generators written in cycle
// notation. A parse failure wraps both ErrConstructFailed and the parser's
// own sentinel (e.g. cycle.ErrSyntax).
func Parsed(notation ...string) Constructor {
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		for i, s := range notation {
			p, err := perm.Parse(s)
			if err != nil {
				return gens, fmt.Errorf("%s: generator %d %q: %w: %w", MethodParsed, i, s, ErrConstructFailed, err)
			}
			if gens, err = cfg.place(gens, p); err != nil {
				return gens, err
			}
		}

		return gens, nil
	}
}
