// Package permgroup is a small toolkit for finite permutation groups: build
// them from generators, enumerate them, walk their cosets and use them to
// canonicalize sequences with symmetries.
//
// 🚀 What is permgroup?
//
//	A pure-Go library (plus a CLI) that brings together:
//		• Permutations: signed, reduced-image value type with composition
//		• Cycle notation: parse and print "(0 1 2)(3 4)" and "-(0 1)"
//		• Dimino's algorithm: full enumeration and incremental extension
//		• Groups: order, membership, orbits, cosets, representatives
//		• Concatenation: combine symmetries of two sequences with excludes
//		• Canonicalization: sort a sequence modulo a group and report the sign
//
// Packages:
//
//	cycle/    cycle notation parsing and conversion to images
//	perm/     the Permutation value type and its algebra
//	dimino/   group enumeration (Generate, Extend) and the element Set
//	group/    Group, cosets, canonical representatives, Concatenate
//	canon/    sort permutations, Apply and Canonicalize
//	builder/  generator families (cyclic, dihedral, symmetric, ...) as constructors
//	cmd/permgroup  the command-line front end
//
// Quick example:
//
//	g, _ := builder.BuildGroup(nil, nil, builder.Parsed("-(0 1)"))
//	seq := []string{"nu", "mu"}
//	sign, _ := canon.Canonicalize(seq, g)
//	// seq == [mu nu], sign == -1
package permgroup
