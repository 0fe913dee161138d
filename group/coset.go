package group

import (
	"slices"

	"github.com/katalvlaran/permgroup/perm"
)

// LeftCoset returns { p·h : h ∈ g } in element order.
func (g *Group) LeftCoset(p perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, len(g.elements))
	for i, h := range g.elements {
		out[i] = perm.Product(p, h)
	}

	return out
}

// RightCoset returns { h·p : h ∈ g } in element order.
func (g *Group) RightCoset(p perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, len(g.elements))
	for i, h := range g.elements {
		out[i] = perm.Product(h, p)
	}

	return out
}

// CanonicalRepresentative returns the minimum element under perm.Compare.
// Since every group holds the positive identity, this is always the identity;
// it is computed rather than assumed.
func (g *Group) CanonicalRepresentative() perm.Permutation {
	return slices.MinFunc(g.elements, perm.Compare).Clone()
}

// LeftCosetRepresentative returns the minimum of LeftCoset(p). Every member
// of the coset yields the same representative. Membership includes the sign:
// -() is not in a group without it, so its representative is -() rather
// than ().
func (g *Group) LeftCosetRepresentative(p perm.Permutation) perm.Permutation {
	return g.cosetMin(p, func(h perm.Permutation) perm.Permutation { return perm.Product(p, h) })
}

// RightCosetRepresentative returns the minimum of RightCoset(p). Every
// member of the coset yields the same representative. As with
// LeftCosetRepresentative, a negative identity outside g is its own
// representative.
func (g *Group) RightCosetRepresentative(p perm.Permutation) perm.Permutation {
	return g.cosetMin(p, func(h perm.Permutation) perm.Permutation { return perm.Product(h, p) })
}

// cosetMin scans the coset produced by mul without materializing it. A
// member p spans g itself.
func (g *Group) cosetMin(p perm.Permutation, mul func(perm.Permutation) perm.Permutation) perm.Permutation {
	if g.set.Contains(p) {
		return g.CanonicalRepresentative()
	}
	best := mul(g.elements[0])
	for _, h := range g.elements[1:] {
		if c := mul(h); perm.Compare(c, best) < 0 {
			best = c
		}
	}

	return best
}
