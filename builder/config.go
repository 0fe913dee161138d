// SPDX-License-Identifier: MIT
// Package: permgroup/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • offset  = DefaultOffset  (constructors act on 0..n-1)
//   • oddSign = DefaultOddSign (generators stay positive)

package builder

import "github.com/katalvlaran/permgroup/perm"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// offset is added to every point a built-in constructor emits.
	offset int
	// oddSign is attached to odd generators of built-in constructors.
	oddSign int
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		offset:  DefaultOffset,
		oddSign: DefaultOddSign,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emit turns an image on 0..n-1 into a generator honoring cfg and appends it.
func (cfg builderConfig) emit(gens []perm.Permutation, image []int) ([]perm.Permutation, error) {
	p, err := perm.New(image)
	if err != nil {
		return gens, err
	}
	if p.Parity() == 1 {
		p.SetSign(cfg.oddSign)
	}

	return cfg.place(gens, p)
}

// place shifts p by the configured offset and appends it.
func (cfg builderConfig) place(gens []perm.Permutation, p perm.Permutation) ([]perm.Permutation, error) {
	if err := p.Shift(cfg.offset, 0); err != nil {
		return gens, err
	}

	return append(gens, p), nil
}
