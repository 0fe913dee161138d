package dimino

import (
	"errors"

	"github.com/katalvlaran/permgroup/perm"
)

var (
	// ErrEmptyElements indicates Extend was called without a seeded group.
	ErrEmptyElements = errors.New("dimino: element list is empty, seed it with Generate first")

	// ErrGeneratorIndex indicates an Extend index outside [1, len(generators)).
	ErrGeneratorIndex = errors.New("dimino: generator index out of range")
)

// Generate returns every element of the group generated by generators,
// without duplicates. The element order is deterministic: the powers of the
// first generator come first, followed by whole cosets in discovery order.
//
// An empty generator list yields nil.
// Complexity: see package doc.
func Generate(generators []perm.Permutation) []perm.Permutation {
	elements, _ := GenerateSet(generators)

	return elements
}

// GenerateSet is Generate that also returns the membership set built along
// the way. The set is nil when elements is nil.
func GenerateSet(generators []perm.Permutation) ([]perm.Permutation, *Set) {
	if len(generators) == 0 {
		return nil, nil
	}
	elements, set := seed(generators[0])
	for i := 1; i < len(generators); i++ {
		elements, _ = extend(elements, set, generators, i)
	}

	return elements, set
}

// Extend grows elements, which must hold exactly the group generated by
// generators[:i], into the group generated by generators[:i+1].
//
// It returns the (possibly reallocated) element slice and whether the group
// grew. A generator that is already an element leaves elements untouched.
//
// Errors:
//   - ErrEmptyElements  if elements is empty.
//   - ErrGeneratorIndex if i <= 0 or i >= len(generators).
func Extend(elements, generators []perm.Permutation, i int) ([]perm.Permutation, bool, error) {
	if len(elements) == 0 {
		return elements, false, ErrEmptyElements
	}
	if i <= 0 || i >= len(generators) {
		return elements, false, ErrGeneratorIndex
	}
	grown, ok := extend(elements, NewSet(elements...), generators, i)

	return grown, ok, nil
}

// ExtendSet is Extend with a caller-owned membership set. set must hold
// exactly elements on entry and is kept in sync with the result.
// Errors: as Extend.
func ExtendSet(elements []perm.Permutation, set *Set, generators []perm.Permutation, i int) ([]perm.Permutation, bool, error) {
	if len(elements) == 0 || set == nil {
		return elements, false, ErrEmptyElements
	}
	if i <= 0 || i >= len(generators) {
		return elements, false, ErrGeneratorIndex
	}
	grown, ok := extend(elements, set, generators, i)

	return grown, ok, nil
}

// seed builds the cyclic group ⟨s⟩: s, s², s³, … until the next power is s
// again, which happens right after the identity has been reached.
func seed(s perm.Permutation) ([]perm.Permutation, *Set) {
	var elements []perm.Permutation
	set := NewSet()
	g := s.Clone()
	for {
		elements = append(elements, g)
		set.Add(g)
		g.PostMultiply(s)
		if g.Equal(s) {
			break
		}
	}

	return elements, set
}

// extend is Extend on a pre-built membership set that it keeps in sync.
func extend(elements []perm.Permutation, set *Set, generators []perm.Permutation, i int) ([]perm.Permutation, bool) {
	s := generators[i]
	if set.Contains(s) {
		return elements, false
	}

	// Every coset of H has |H| elements, and H itself is the prefix.
	cosetSize := len(elements)

	// s ∉ H, hence the coset H·s is disjoint from H and can be added whole.
	elements = appendCoset(elements, set, cosetSize, s)

	// If g·sₖ is new for a representative g, its whole coset H·(g·sₖ) is new.
	for repPos := cosetSize; repPos < len(elements); repPos += cosetSize {
		for k := 0; k <= i; k++ {
			rep := elements[repPos]
			rep.PostMultiply(generators[k])
			if !set.Contains(rep) {
				elements = appendCoset(elements, set, cosetSize, rep)
			}
		}
	}

	return elements, true
}

// appendCoset appends h·rep for every h in elements[:cosetSize].
func appendCoset(elements []perm.Permutation, set *Set, cosetSize int, rep perm.Permutation) []perm.Permutation {
	for m := 0; m < cosetSize; m++ {
		h := elements[m]
		h.PostMultiply(rep)
		elements = append(elements, h)
		set.Add(h)
	}

	return elements
}
