package dimino_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/permgroup/dimino"
	"github.com/katalvlaran/permgroup/perm"
)

func parseAll(ss ...string) []perm.Permutation {
	out := make([]perm.Permutation, len(ss))
	for i, s := range ss {
		out[i] = perm.MustParse(s)
	}

	return out
}

func strs(ps []perm.Permutation) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// symmetric returns Sym(n) enumerated by gonum, as strings.
func symmetric(t *testing.T, n int) []string {
	t.Helper()
	var out []string
	for _, img := range combin.Permutations(n, n) {
		p, err := perm.New(img)
		require.NoError(t, err)
		out = append(out, p.String())
	}

	return out
}

type GenerateSuite struct {
	suite.Suite
}

func (s *GenerateSuite) TestEmpty() {
	s.Nil(dimino.Generate(nil))
}

func (s *GenerateSuite) TestIdentityGenerator() {
	els := dimino.Generate(parseAll("()"))
	s.Require().Len(els, 1)
	s.True(els[0].IsIdentity())
}

func (s *GenerateSuite) TestCyclic() {
	els := dimino.Generate(parseAll("(0 1 2 3)"))
	s.Equal([]string{"(0 1 2 3)", "(0 2)(1 3)", "(0 3 2 1)", "()"}, strs(els),
		"powers of the seed appear in order")
}

func (s *GenerateSuite) TestSignedCyclic() {
	els := dimino.Generate(parseAll("-(0 1 2 3)"))
	s.ElementsMatch([]string{"()", "-(0 1 2 3)", "(0 2)(1 3)", "-(0 3 2 1)"}, strs(els))
}

func (s *GenerateSuite) TestSignedDuplicates() {
	// the same image with both signs counts twice
	els := dimino.Generate(parseAll("-(0 1)", "(0 1)"))
	s.ElementsMatch([]string{"()", "-()", "(0 1)", "-(0 1)"}, strs(els))
}

func (s *GenerateSuite) TestOrders() {
	tests := []struct {
		gens []string
		want int
	}{
		{[]string{"(0 1)", "(2 3 4 5)"}, 8},
		{[]string{"(0 1 2)", "(0 1)"}, 6},
		{[]string{"(0 1)(2 3)", "(3 4)"}, 12},
		{[]string{"(0 5 2)", "(4 5)", "(1 3 2)"}, 720},
		{[]string{"(0 2 4 6)", "(0 1)"}, 120},
		{[]string{"(0 1 2 3 4 5)", "(0 1)"}, 720},
	}
	for _, tt := range tests {
		els := dimino.Generate(parseAll(tt.gens...))
		s.Len(els, tt.want, "%v", tt.gens)
		s.Equal(len(els), dimino.NewSet(els...).Len(), "no duplicates in %v", tt.gens)
	}
}

func (s *GenerateSuite) TestSymmetricOracle() {
	for n := 2; n <= 5; n++ {
		gens := parseAll("(0 1)")
		full := make([]int, n)
		for i := range full {
			full[i] = (i + 1) % n
		}
		gens = append(gens, perm.MustNew(full))
		s.ElementsMatch(symmetric(s.T(), n), strs(dimino.Generate(gens)), "Sym(%d)", n)
	}
}

func (s *GenerateSuite) TestClosure() {
	els := dimino.Generate(parseAll("(0 1)(2 3)", "(3 4)"))
	set := dimino.NewSet(els...)
	for _, a := range els {
		for _, b := range els {
			s.Require().True(set.Contains(perm.Product(a, b)), "%v·%v", a, b)
		}
	}
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

// TestExtend grows ⟨(0 3)⟩ one generator at a time.
func TestExtend(t *testing.T) {
	gens := parseAll("(0 3)", "(1 4)", "(2 5)")
	els := parseAll("()", "(0 3)")

	els, grown, err := dimino.Extend(els, gens, 1)
	require.NoError(t, err)
	assert.True(t, grown)
	assert.Len(t, els, 4)

	els, grown, err = dimino.Extend(els, gens, 2)
	require.NoError(t, err)
	assert.True(t, grown)
	assert.Len(t, els, 8)
	assert.ElementsMatch(t, []string{
		"()", "(0 3)", "(1 4)", "(0 3)(1 4)",
		"(2 5)", "(0 3)(2 5)", "(1 4)(2 5)", "(0 3)(1 4)(2 5)",
	}, strs(els))

	gens = append(gens, perm.MustParse("(0 3)(2 5)"))
	same, grown, err := dimino.Extend(els, gens, 3)
	require.NoError(t, err)
	assert.False(t, grown)
	assert.Equal(t, strs(els), strs(same))
}

// TestExtend_Errors covers the guard clauses.
func TestExtend_Errors(t *testing.T) {
	gens := parseAll("(0 1)", "(1 2)")

	_, _, err := dimino.Extend(nil, gens, 1)
	assert.ErrorIs(t, err, dimino.ErrEmptyElements)

	els := dimino.Generate(gens[:1])
	for _, i := range []int{0, -1, 2} {
		_, _, err = dimino.Extend(els, gens, i)
		assert.ErrorIs(t, err, dimino.ErrGeneratorIndex, "i=%d", i)
	}
}

// TestExtend_MatchesGenerate checks that stepwise extension equals one-shot
// generation, including the element order.
func TestExtend_MatchesGenerate(t *testing.T) {
	gens := parseAll("(0 5 2)", "(4 5)", "(1 3 2)")
	els := dimino.Generate(gens[:1])
	for i := 1; i < len(gens); i++ {
		var err error
		els, _, err = dimino.Extend(els, gens, i)
		require.NoError(t, err)
	}
	assert.Equal(t, strs(dimino.Generate(gens)), strs(els))
}

// TestSet covers hashing with sign and de-duplication.
func TestSet(t *testing.T) {
	set := dimino.NewSet(parseAll("(0 1)", "(0 1)", "-(0 1)")...)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(perm.MustNew([]int{1, 0, 2})))
	assert.True(t, set.Contains(perm.MustParse("-(0 1)")))
	assert.False(t, set.Contains(perm.Identity()))

	assert.True(t, set.Add(perm.Identity()))
	assert.False(t, set.Add(perm.Permutation{}), "zero value is the identity")
	assert.Equal(t, 3, set.Len())
}

// TestExtendSet keeps a caller-owned set in sync.
func TestExtendSet(t *testing.T) {
	gens := parseAll("(0 1 2)", "(0 1)")
	els, set := dimino.GenerateSet(gens[:1])
	require.Equal(t, 3, set.Len())

	els, grown, err := dimino.ExtendSet(els, set, gens, 1)
	require.NoError(t, err)
	assert.True(t, grown)
	assert.Len(t, els, 6)
	assert.Equal(t, 6, set.Len())
	for _, p := range els {
		assert.True(t, set.Contains(p))
	}

	_, _, err = dimino.ExtendSet(els, nil, gens, 1)
	assert.ErrorIs(t, err, dimino.ErrEmptyElements)

	none, noSet := dimino.GenerateSet(nil)
	assert.Nil(t, none)
	assert.Nil(t, noSet)
}
