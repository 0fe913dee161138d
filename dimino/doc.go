// Package dimino enumerates the elements of a finite permutation group from
// a list of generators using Dimino's algorithm.
//
// 🚀 Idea
//
//	Instead of multiplying generators blindly until nothing new appears,
//	Dimino's algorithm grows the group one generator at a time and always
//	adds whole right cosets H·g of the subgroup H generated so far. Cosets
//	are either identical or disjoint, so one membership test per coset
//	representative decides whether an entire block of |H| elements is new.
//
// Algorithm Outline:
//  1. Seed: H = ⟨s₀⟩, the powers s₀, s₀², … until the power returns to s₀.
//  2. Extend by sᵢ: if sᵢ ∈ H, nothing changes. Otherwise append H·sᵢ,
//     then for every coset representative g (in append order) and every
//     generator sₖ with k ≤ i, append the coset H·(g·sₖ) whenever g·sₖ is
//     not yet an element. Stop when no unprocessed representative is left.
//  3. Generate applies step 2 for s₁, s₂, … after seeding with s₀.
//
// Invariant: after every step the element list is a union of complete right
// cosets of the subgroup generated so far, never a partial one.
//
// Membership tests use Set, a hash set keyed by Permutation.Hash with exact
// comparison on collisions.
//
// Complexity:
//
//   - Time:   O(|G| · |S| · n) expected (hash lookups), n = largest support
//   - Memory: O(|G| · n)
//
// The group order can grow as fast as n!, bounding it is the caller's job.
package dimino
