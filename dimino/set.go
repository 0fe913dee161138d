package dimino

import "github.com/katalvlaran/permgroup/perm"

// Set is a hash set of signed permutations. The zero value is not usable;
// create one with NewSet.
type Set struct {
	buckets map[uint64][]perm.Permutation
	n       int
}

// NewSet returns a Set holding elems (duplicates collapse).
// Complexity: O(len(elems) · n).
func NewSet(elems ...perm.Permutation) *Set {
	s := &Set{buckets: make(map[uint64][]perm.Permutation, len(elems))}
	for _, p := range elems {
		s.Add(p)
	}

	return s
}

// Add inserts p and reports whether it was absent.
func (s *Set) Add(p perm.Permutation) bool {
	h := p.Hash()
	for _, q := range s.buckets[h] {
		if q.Equal(p) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], p)
	s.n++

	return true
}

// Contains reports whether p is in s. Image and sign must both match.
func (s *Set) Contains(p perm.Permutation) bool {
	for _, q := range s.buckets[p.Hash()] {
		if q.Equal(p) {
			return true
		}
	}

	return false
}

// Len returns the number of distinct permutations in s.
func (s *Set) Len() int { return s.n }
