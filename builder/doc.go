// Package builder provides functional-options-style constructors for the
// generator sets of standard permutation groups, and an orchestrator that
// composes them into a group.Group.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  point offset and the sign attached to odd generators.
//   - Constructors (each returns a Constructor closure):
//     – Cyclic(n):        ⟨(0 1 … n-1)⟩, order n.
//     – Dihedral(n):      rotation and reflection of an n-gon, order 2n.
//     – Symmetric(n):     a transposition and an n-cycle, order n!.
//     – Alternating(n):   the 3-cycles (0 1 k), order n!/2.
//     – Antisymmetric(n): adjacent transpositions with sign -1, order n!.
//     – Parsed(s…):       generators written in cycle notation.
//     – Offset(k, c…):    runs constructors on points shifted by k.
//   - Orchestrators:
//     – Generators(bopts, cons…): concatenated generator list.
//     – BuildGroup(gopts, bopts, cons…): the generated group.
//
// Guarantees:
//
//   - Deterministic: same inputs and options ⇒ identical generators in
//     identical order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid sizes, wrapping ErrTooFewPoints
//     with the constructor name for context.
//   - Signing odd generators never changes the group order, since parity is
//     a homomorphism.
//
// ⚙️ Usage:
//
//	// Sym(3) on points 0..2 times C4 on points 3..6
//	g, err := builder.BuildGroup(nil, nil,
//		builder.Symmetric(3),
//		builder.Offset(3, builder.Cyclic(4)),
//	)
//	// g.Order() == 24
package builder
