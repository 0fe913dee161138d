// Package group provides Group, a finite permutation group stored as the
// explicit, duplicate-free list of its elements together with the generators
// that produced it.
//
// ✨ Key features:
//   - Generation through Dimino's algorithm (package dimino), extended in
//     place when a generator is added
//   - Membership in O(n) expected time via a hashed element index
//   - Orbits of points, left and right cosets
//   - Canonical representatives: the minimum of the group or of a coset
//     under a fixed total order (see Compare below)
//   - Concatenate: the symmetry group of two sequences placed side by side
//     after some positions have been removed from each
//
// ⚙️ Conventions:
//
//	a·b means "first a, then b", i.e. a.PostMultiply(b).
//	LeftCoset(p)  = { p·h : h ∈ G }
//	RightCoset(p) = { h·p : h ∈ G }
//
// Canonical order: permutations are compared by their image sequences
// (the images of 0, 1, 2, …); the first smaller image wins. Equal images
// with different signs are ordered positive first. The identity is therefore
// the canonical representative of every group. See perm.Compare.
//
// A Group is not safe for concurrent mutation. Read-only use after
// construction is safe; accessors return copies.
//
// Complexity (|G| elements, n = largest support, k generators):
//   - New / SetGenerators: O(|G| · k · n) expected
//   - Contains:            O(n) expected
//   - Orbit, cosets, representatives: O(|G| · n)
package group
