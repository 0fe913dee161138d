package group

import (
	"fmt"

	"github.com/katalvlaran/permgroup/dimino"
	"github.com/katalvlaran/permgroup/perm"
)

// Group is a finite permutation group: its generators and all its elements.
// Invariant: elements is exactly ⟨generators⟩, without duplicates.
//
// The zero value is not usable; create one with New.
type Group struct {
	generators []perm.Permutation
	elements   []perm.Permutation
	set        *dimino.Set
	cfg        groupConfig
}

// New returns the group generated by generators. An empty list yields the
// trivial group {id}. The generators are copied.
func New(generators []perm.Permutation, opts ...Option) *Group {
	g := &Group{cfg: newConfig(opts)}
	g.SetGenerators(generators)

	return g
}

// SetGenerators replaces the generators and regenerates all elements.
func (g *Group) SetGenerators(generators []perm.Permutation) {
	if len(generators) == 0 {
		g.generators = []perm.Permutation{perm.Identity()}
	} else {
		g.generators = cloneAll(generators)
	}
	g.elements, g.set = dimino.GenerateSet(g.generators)
	if l := g.cfg.logger; l != nil {
		l.Debug("generated group", "generators", len(g.generators), "order", len(g.elements))
	}
	g.verify()
}

// AddGenerator extends g by p in place. It returns false, leaving g
// untouched, when p is already an element.
// Complexity: O(|G'| · k · n) for the new order |G'|.
func (g *Group) AddGenerator(p perm.Permutation) bool {
	if g.set.Contains(p) {
		return false
	}
	before := len(g.elements)
	g.generators = append(g.generators, p.Clone())
	elements, grown, err := dimino.ExtendSet(g.elements, g.set, g.generators, len(g.generators)-1)
	if err != nil {
		// the element list always holds at least the identity
		panic(panicConsistency + err.Error())
	}
	g.elements = elements
	if l := g.cfg.logger; l != nil {
		l.Debug("extended group", "generator", p, "from", before, "to", len(g.elements))
	}
	g.verify()

	return grown
}

// Order returns the number of elements.
func (g *Group) Order() int { return len(g.elements) }

// Contains reports whether p is an element of g, sign included.
func (g *Group) Contains(p perm.Permutation) bool { return g.set.Contains(p) }

// Generators returns a copy of the generator list.
func (g *Group) Generators() []perm.Permutation { return cloneAll(g.generators) }

// Elements returns a copy of the element list in generation order.
func (g *Group) Elements() []perm.Permutation { return g.ElementsTo(nil) }

// ElementsTo appends the elements to dst[:0] and returns the result, reusing
// dst's storage when it is large enough. Permutations are immutable between
// mutations, so the values are shared, not cloned.
func (g *Group) ElementsTo(dst []perm.Permutation) []perm.Permutation {
	return append(dst[:0], g.elements...)
}

// Orbit returns the distinct images of point under all elements, in
// first-seen order. The orbit always contains point itself.
// Complexity: O(|G|).
func (g *Group) Orbit(point int) []int {
	seen := make(map[int]struct{})
	var orbit []int
	for _, e := range g.elements {
		x := e.Image(point)
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		orbit = append(orbit, x)
	}

	return orbit
}

// Equal reports whether a and b are the same group: equal order and each
// group's generators are elements of the other.
func Equal(a, b *Group) bool {
	if a.Order() != b.Order() {
		return false
	}
	for _, p := range a.generators {
		if !b.Contains(p) {
			return false
		}
	}
	for _, p := range b.generators {
		if !a.Contains(p) {
			return false
		}
	}

	return true
}

// String renders g as "⟨gen, gen, …⟩ order=N".
func (g *Group) String() string {
	return fmt.Sprintf("⟨%v⟩ order=%d", joinPerms(g.generators), len(g.elements))
}

// verify runs the optional consistency check.
func (g *Group) verify() {
	if !g.cfg.check {
		return
	}
	if g.set.Len() != len(g.elements) {
		panic(fmt.Sprintf("%sduplicate elements (%d distinct of %d)", panicConsistency, g.set.Len(), len(g.elements)))
	}
	for _, e := range g.elements {
		for _, s := range g.generators {
			prod := perm.Product(e, s)
			if !g.set.Contains(prod) {
				panic(fmt.Sprintf("%s%v·%v is missing", panicConsistency, e, s))
			}
		}
	}
}

func cloneAll(ps []perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}

	return out
}

func joinPerms(ps []perm.Permutation) string {
	var s string
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}

	return s
}
