package perm

// PostMultiply composes p with other in place so that the result means
// FIRST p, THEN other: result(i) = other(p(i)). Signs multiply.
//
// The operands may have different supports and may alias (p.PostMultiply(p)
// squares p): the result is always computed into a fresh buffer.
// Complexity: O(max(p.Len(), other.Len())).
func (p *Permutation) PostMultiply(other Permutation) {
	n := max(p.Len(), other.Len())
	buf := make([]int, n)
	for i := range buf {
		buf[i] = other.Image(p.Image(i))
	}
	p.image = reduce(buf)
	p.negative = p.negative != other.negative
}

// PreMultiply composes p with other in place so that the result means
// FIRST other, THEN p: result(i) = p(other(i)). Signs multiply.
// Aliasing and differing supports are handled as in PostMultiply.
func (p *Permutation) PreMultiply(other Permutation) {
	n := max(p.Len(), other.Len())
	buf := make([]int, n)
	for i := range buf {
		buf[i] = p.Image(other.Image(i))
	}
	p.image = reduce(buf)
	p.negative = p.negative != other.negative
}

// Multiply is PostMultiply.
func (p *Permutation) Multiply(other Permutation) { p.PostMultiply(other) }

// Invert replaces p by its inverse. The sign is preserved.
// Complexity: O(n).
func (p *Permutation) Invert() { p.InvertWithSign(false) }

// InvertWithSign replaces p by its inverse and, if flip is set, also negates
// its sign.
func (p *Permutation) InvertWithSign(flip bool) {
	n := p.Len()
	inv := make([]int, n)
	for i := 0; i < n; i++ {
		inv[p.Image(i)] = i
	}
	p.image = reduce(inv)
	if flip {
		p.negative = !p.negative
	}
}

// Shift relabels every index x >= start to x+offset. With offset > 0 this
// opens a gap of fixed points at [start, start+offset); with offset < 0 it
// closes the range [start+offset, start), which must consist of fixed points.
//
// Only moved points are relabelled. E.g. (2 3) shifted by +2 is (4 5), and
// (0 3 5) shifted by -1 from 5 is (0 3 4).
//
// Errors (p is left unchanged):
//   - ErrShiftUnderflow if a moved point would become negative.
//   - ErrShiftCollision if two moved points would share an index.
//
// Complexity: O(n + |offset|).
func (p *Permutation) Shift(offset, start int) error {
	if offset == 0 {
		return nil
	}
	relabel := func(x int) int {
		if x >= start {
			return x + offset
		}
		return x
	}

	size := 1
	for i, img := range p.image {
		if img == i {
			continue
		}
		ni, nv := relabel(i), relabel(img)
		if ni < 0 || nv < 0 {
			return ErrShiftUnderflow
		}
		size = max(size, ni+1, nv+1)
	}

	buf := identityImage(size)
	written := make([]bool, size)
	for i, img := range p.image {
		if img == i {
			continue
		}
		ni := relabel(i)
		if written[ni] {
			return ErrShiftCollision
		}
		written[ni] = true
		buf[ni] = relabel(img)
	}
	p.image = reduce(buf)

	return nil
}

// Equal reports whether p and q have the same image on every point and the
// same sign.
func (p Permutation) Equal(q Permutation) bool { return Compare(p, q) == 0 }

// Equal reports whether a and b are the same signed permutation.
func Equal(a, b Permutation) bool { return Compare(a, b) == 0 }

// Compare orders permutations by their image sequences: the images of
// 0, 1, 2, … are compared in turn up to the larger support, and the first
// smaller image wins. Permutations with identical images are ordered by
// sign, positive first. The identity is the minimum of every group.
//
// Returns -1, 0 or +1.
func Compare(a, b Permutation) int {
	n := max(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		ai, bi := a.Image(i), b.Image(i)
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.negative == b.negative:
		return 0
	case b.negative:
		return -1
	default:
		return 1
	}
}

// Inverse returns the inverse of p with the same sign.
func Inverse(p Permutation) Permutation {
	q := p.Clone()
	q.Invert()

	return q
}

// Product returns the composition of ps read left to right: first ps[0],
// then ps[1], and so on. The empty product is the identity.
func Product(ps ...Permutation) Permutation {
	out := Identity()
	for _, p := range ps {
		out.PostMultiply(p)
	}

	return out
}

// Parity returns 0 for an even and 1 for an odd permutation. The sign
// attached to p plays no role.
// Complexity: O(n).
func (p Permutation) Parity() int {
	parity := 0
	for _, c := range p.ToCycle() {
		parity ^= (len(c) - 1) & 1
	}

	return parity
}
