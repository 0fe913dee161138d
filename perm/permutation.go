package perm

import (
	"github.com/segmentio/fasthash/jody"

	"github.com/katalvlaran/permgroup/cycle"
)

// Kind enumerates the concrete encodings a Permutation may use.
// The set is closed: a new encoding is a new Kind, handled by the methods
// of Permutation itself.
type Kind uint8

const (
	// Explicit stores the full image of every point up to the largest moved one.
	Explicit Kind = iota
)

// Permutation is a signed bijection on {0,…,MaxElement()}.
//
// The zero value is the positive identity.
type Permutation struct {
	// image is reduced: image[len-1] != len-1 unless len == 1.
	image    []int
	negative bool
}

// Identity returns the positive identity permutation.
func Identity() Permutation {
	return Permutation{image: []int{0}}
}

// New builds a positive permutation from an explicit image, where image[i]
// is the point i maps to. The slice is copied. An empty image is the identity.
//
// Errors: ErrNotBijective.
// Complexity: O(n).
func New(image []int) (Permutation, error) {
	if err := cycle.ValidateImage(image); err != nil {
		return Permutation{}, ErrNotBijective
	}
	buf := make([]int, len(image))
	copy(buf, image)

	return Permutation{image: reduce(buf)}, nil
}

// NewSigned is New with an explicit sign.
//
// Errors: ErrNotBijective, ErrInvalidSign.
func NewSigned(image []int, sign int) (Permutation, error) {
	if sign != 1 && sign != -1 {
		return Permutation{}, ErrInvalidSign
	}
	p, err := New(image)
	if err != nil {
		return Permutation{}, err
	}
	p.negative = sign < 0

	return p, nil
}

// MustNew is New that panics on error. Intended for literals.
func MustNew(image []int) Permutation {
	p, err := New(image)
	if err != nil {
		panic(err)
	}

	return p
}

// FromCycle builds a positive permutation from cycle notation. Overlapping
// cycles are composed left to right.
//
// Errors: cycle.ErrNegativeIndex, cycle.ErrRepeatedIndex.
func FromCycle(c cycle.Cycle) (Permutation, error) {
	return FromCycleSigned(c, 1)
}

// FromCycleSigned is FromCycle with an explicit sign.
func FromCycleSigned(c cycle.Cycle, sign int) (Permutation, error) {
	if sign != 1 && sign != -1 {
		return Permutation{}, ErrInvalidSign
	}
	image, err := c.ToImage(0)
	if err != nil {
		return Permutation{}, err
	}

	return Permutation{image: reduce(image), negative: sign < 0}, nil
}

// MustFromCycle is FromCycle that panics on error.
func MustFromCycle(c cycle.Cycle) Permutation {
	p, err := FromCycle(c)
	if err != nil {
		panic(err)
	}

	return p
}

// Kind reports the encoding of p. It is always Explicit today.
func (p Permutation) Kind() Kind { return Explicit }

// Image returns the point x maps to. Points outside the stored support,
// including negative ones, are fixed.
// Complexity: O(1).
func (p Permutation) Image(x int) int {
	if x >= 0 && x < len(p.image) {
		return p.image[x]
	}

	return x
}

// Images returns a copy of the reduced image. The identity yields [0].
func (p Permutation) Images() []int {
	if len(p.image) == 0 {
		return []int{0}
	}
	out := make([]int, len(p.image))
	copy(out, p.image)

	return out
}

// MaxElement returns the largest point p acts on explicitly. Every point
// above it is fixed. The identity reports 0.
func (p Permutation) MaxElement() int {
	if len(p.image) == 0 {
		return 0
	}

	return len(p.image) - 1
}

// Len returns the size of the explicit support, MaxElement()+1.
func (p Permutation) Len() int { return p.MaxElement() + 1 }

// Sign returns -1 or +1.
func (p Permutation) Sign() int {
	if p.negative {
		return -1
	}

	return 1
}

// SetSign sets the sign of p. Passing anything but -1 or +1 is a programming
// error and panics.
func (p *Permutation) SetSign(sign int) {
	if sign != 1 && sign != -1 {
		panic(panicSetSign)
	}
	p.negative = sign < 0
}

// IsIdentity reports whether p fixes every point. The sign is ignored.
func (p Permutation) IsIdentity() bool {
	// reduced form: only [0] can be the identity
	return len(p.image) <= 1
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	return Permutation{image: p.Images(), negative: p.negative}
}

// ToCycle returns the disjoint cycle decomposition of p, fixed points dropped.
// The sign is not part of cycle notation.
func (p Permutation) ToCycle() cycle.Cycle {
	c, err := cycle.FromImage(p.Images())
	if err != nil {
		// a Permutation is bijective by construction
		panic("perm: corrupted image: " + err.Error())
	}

	return c
}

// Hash returns a 64-bit hash of the reduced image and the sign. Equal
// permutations hash equally.
func (p Permutation) Hash() uint64 {
	h := jody.HashUint64(uint64(p.Image(0)))
	for i := 1; i < len(p.image); i++ {
		h = jody.AddUint64(h, uint64(p.image[i]))
	}
	if p.negative {
		h = jody.AddUint64(h, ^uint64(0))
	}

	return h
}

// reduce trims trailing fixed points in place, keeping at least one entry.
func reduce(image []int) []int {
	n := len(image)
	for n > 1 && image[n-1] == n-1 {
		n--
	}
	if n == 0 {
		return []int{0}
	}

	return image[:n]
}

// identityImage returns [0, 1, …, n-1].
func identityImage(n int) []int {
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}

	return img
}
