package cycle

import (
	"strconv"
	"strings"
)

// Cycle is a list of index cycles. Each inner slice maps every entry to the
// entry that follows it, and the last entry back to the first.
//
// Cycles need not be disjoint: they are applied in order, and each later
// cycle acts on the result of the earlier ones. Empty and singleton cycles
// are allowed and have no effect.
type Cycle [][]int

// Validate reports whether every cycle consists of distinct, non-negative
// indices. Complexity: O(total length).
func (c Cycle) Validate() error {
	for _, cyc := range c {
		seen := make(map[int]struct{}, len(cyc))
		for _, x := range cyc {
			if x < 0 {
				return ErrNegativeIndex
			}
			if _, dup := seen[x]; dup {
				return ErrRepeatedIndex
			}
			seen[x] = struct{}{}
		}
	}

	return nil
}

// Max returns the largest index referenced by c, or -1 if c references none.
func (c Cycle) Max() int {
	m := -1
	for _, cyc := range c {
		for _, x := range cyc {
			if x > m {
				m = x
			}
		}
	}

	return m
}

// ToImage converts c into an explicit image of length max(n, c.Max()+1).
//
// Algorithm:
//  1. Start from the identity image.
//  2. For every cycle in order: save image[first], move image[next] into
//     image[current] along the chain, and close the loop with the saved value.
//
// Because each cycle rotates the current image rather than the identity,
// overlapping cycles compose left to right.
//
// Errors: ErrNegativeIndex, ErrRepeatedIndex.
// Complexity: O(n + total length).
func (c Cycle) ToImage(n int) ([]int, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if m := c.Max() + 1; m > n {
		n = m
	}
	image := make([]int, n)
	for i := range image {
		image[i] = i
	}
	for _, cyc := range c {
		if len(cyc) < 2 {
			continue
		}
		first := image[cyc[0]]
		for i := 0; i < len(cyc)-1; i++ {
			image[cyc[i]] = image[cyc[i+1]]
		}
		image[cyc[len(cyc)-1]] = first
	}

	return image, nil
}

// FromImage decomposes image into disjoint cycles.
//
// The image is walked left to right; every unvisited index i starts a chain
// i → image[i] → image[image[i]] → … that is recorded until it returns to i.
// Fixed points are dropped, so the identity yields an empty Cycle. Every
// resulting cycle starts at its smallest index, and cycles are ordered by it.
//
// Errors: ErrNotBijective if image is not a permutation of 0..len(image)-1.
// Complexity: O(n).
func FromImage(image []int) (Cycle, error) {
	if err := ValidateImage(image); err != nil {
		return nil, err
	}
	visited := make([]bool, len(image))
	var out Cycle
	for i := range image {
		if visited[i] {
			continue
		}
		visited[i] = true
		if image[i] == i {
			continue
		}
		cyc := []int{i}
		for j := image[i]; j != i; j = image[j] {
			visited[j] = true
			cyc = append(cyc, j)
		}
		out = append(out, cyc)
	}

	return out, nil
}

// ValidateImage reports whether image is a bijection on 0..len(image)-1.
// Complexity: O(n) time and memory.
func ValidateImage(image []int) error {
	seen := make([]bool, len(image))
	for _, x := range image {
		if x < 0 || x >= len(image) || seen[x] {
			return ErrNotBijective
		}
		seen[x] = true
	}

	return nil
}

// Normalize returns the disjoint form of c: the net effect of all cycles,
// singletons dropped, each cycle starting at its minimum, ordered by minimum.
func (c Cycle) Normalize() (Cycle, error) {
	image, err := c.ToImage(0)
	if err != nil {
		return nil, err
	}

	return FromImage(image)
}

// Equal reports whether a and b induce the same image. Points beyond the
// shorter image are compared as fixed points. Invalid cycles are never equal.
func Equal(a, b Cycle) bool {
	ia, err := a.ToImage(0)
	if err != nil {
		return false
	}
	ib, err := b.ToImage(len(ia))
	if err != nil {
		return false
	}
	if len(ia) < len(ib) {
		if ia, err = a.ToImage(len(ib)); err != nil {
			return false
		}
	}
	for i := range ia {
		if ia[i] != ib[i] {
			return false
		}
	}

	return true
}

// String renders c as written, e.g. "(0 1 2)(3 4)". An empty Cycle renders
// as "()". Use Normalize first for a canonical spelling.
func (c Cycle) String() string {
	var sb strings.Builder
	for _, cyc := range c {
		sb.WriteByte('(')
		for i, x := range cyc {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte(')')
	}
	if sb.Len() == 0 {
		return "()"
	}

	return sb.String()
}
