// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Orchestrators: Generators(bopts, cons...) and BuildGroup(gopts, bopts, cons...).
//     They resolve cfg once and run cons in order.
//   - Factories are implemented in impl_*.go and return Constructor closures.
//   - Determinism: same inputs and options ⇒ identical generators in identical order.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
)

// Constructor appends generators to gens using the resolved builderConfig
// and returns the extended slice. Constructors MUST validate parameters early
// and return sentinel errors instead of panicking.
type Constructor func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error)

// Generators resolves the builder configuration from bopts and concatenates
// the generators of all constructors in order.
//
// Errors: constructor errors wrapped as "Generators: %w"; a nil constructor
// yields ErrConstructFailed.
func Generators(bopts []BuilderOption, cons ...Constructor) ([]perm.Permutation, error) {
	cfg := newBuilderConfig(bopts...)

	var gens []perm.Permutation
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generators: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var err error
		if gens, err = fn(gens, cfg); err != nil {
			return nil, fmt.Errorf("Generators: %w", err)
		}
	}

	return gens, nil
}

// BuildGroup is Generators followed by group.New with gopts.
// Complexity: dominated by group generation, O(|G| · k · n).
func BuildGroup(gopts []group.Option, bopts []BuilderOption, cons ...Constructor) (*group.Group, error) {
	gens, err := Generators(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGroup: %w", err)
	}

	return group.New(gens, gopts...), nil
}

// Offset returns a Constructor that runs cons on points shifted by k on top
// of the configured offset. Use it to place groups on disjoint blocks.
// Panics on k < 0, like WithOffset.
func Offset(k int, cons ...Constructor) Constructor {
	if k < 0 {
		panic(fmt.Sprintf("builder: Offset(%d)", k))
	}
	return func(gens []perm.Permutation, cfg builderConfig) ([]perm.Permutation, error) {
		cfg.offset += k
		for i, fn := range cons {
			if fn == nil {
				return gens, fmt.Errorf("Offset: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			var err error
			if gens, err = fn(gens, cfg); err != nil {
				return gens, err
			}
		}

		return gens, nil
	}
}
