package group_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/permgroup/group"
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

// sym6 lists three generator sets of the same group Sym(6).
var sym6 = [][]string{
	{"(0 5 2)", "(4 5)", "(1 3 2)"},
	{"(0 1 2 3 4 5)", "(0 1)"},
	{"(0 1)", "(1 2)", "(2 3)", "(3 4)", "(4 5)"},
}

type GroupSuite struct {
	suite.Suite
}

func (s *GroupSuite) TestTrivial() {
	g := group.New(nil)
	s.Equal(1, g.Order())
	s.True(g.Contains(perm.Identity()))
	s.Equal([]string{"()"}, strs(g.Generators()))
	s.True(g.CanonicalRepresentative().IsIdentity())
}

func (s *GroupSuite) TestOrderAndContains() {
	for _, gens := range sym6 {
		g := group.New(parseAll(gens...), group.WithConsistencyCheck())
		s.Equal(720, g.Order(), "%v", gens)
		s.True(g.Contains(perm.MustParse("(0 1)(2 3 4 5)")))
		s.False(g.Contains(perm.MustParse("(5 6)")))
		s.False(g.Contains(perm.MustParse("-(0 1)")), "sign matters")
	}
}

func (s *GroupSuite) TestOrbit() {
	g := group.New(parseAll("(0 1)", "(3 1)"))
	s.ElementsMatch([]int{0, 1, 3}, g.Orbit(3))
	s.Equal([]int{2}, g.Orbit(2))
	s.Equal([]int{9}, g.Orbit(9), "points beyond the support are fixed")
}

func (s *GroupSuite) TestAddGenerator() {
	g := group.New(parseAll("(0 3)"), group.WithConsistencyCheck())
	s.True(g.AddGenerator(perm.MustParse("(1 4)")))
	s.True(g.AddGenerator(perm.MustParse("(2 5)")))
	s.Equal(8, g.Order())
	s.False(g.AddGenerator(perm.MustParse("(0 3)(2 5)")))
	s.Len(g.Generators(), 3, "rejected generators are not recorded")

	full := group.New(parseAll("(0 3)", "(1 4)", "(2 5)"))
	s.True(group.Equal(g, full))
	s.ElementsMatch(strs(full.Elements()), strs(g.Elements()))
}

func (s *GroupSuite) TestSetGenerators() {
	g := group.New(parseAll("(0 1)"))
	g.SetGenerators(parseAll("(0 1 2)", "(0 1)"))
	s.Equal(6, g.Order())
	g.SetGenerators(nil)
	s.Equal(1, g.Order())
}

func (s *GroupSuite) TestCopies() {
	gens := parseAll("(0 1 2)")
	g := group.New(gens)
	gens[0] = perm.MustParse("(0 1)")
	s.Equal("(0 1 2)", g.Generators()[0].String(), "input is copied")

	els := g.Elements()
	els[0] = perm.MustParse("(5 6)")
	s.False(g.Contains(perm.MustParse("(5 6)")))
	s.Equal(3, len(g.Elements()))

	buf := make([]perm.Permutation, 10)
	out := g.ElementsTo(buf)
	s.Len(out, 3)
	s.Same(&buf[0], &out[0], "storage is reused")
}

func (s *GroupSuite) TestEqual() {
	a := group.New(parseAll(sym6[0]...))
	b := group.New(parseAll(sym6[1]...))
	s.True(group.Equal(a, b))
	s.True(group.Equal(b, a))

	c := group.New(parseAll("(0 1 2 3 4 5)"))
	s.False(group.Equal(a, c))

	// same order, different group
	d := group.New(parseAll("(0 1)"))
	e := group.New(parseAll("(2 3)"))
	s.False(group.Equal(d, e))
}

func (s *GroupSuite) TestString() {
	g := group.New(parseAll("(0 1 2)", "-(0 1)"))
	s.Equal("⟨(0 1 2), -(0 1)⟩ order=6", g.String())
}

func TestGroupSuite(t *testing.T) {
	suite.Run(t, new(GroupSuite))
}

// TestCosets checks the two coset conventions.
func TestCosets(t *testing.T) {
	g := group.New(parseAll("(0 1)"))
	p := perm.MustParse("(1 2)")

	// p·h: first (1 2), then h
	assert.ElementsMatch(t, []string{"(1 2)", "(0 1 2)"}, strs(g.LeftCoset(p)))
	// h·p: first h, then (1 2)
	assert.ElementsMatch(t, []string{"(1 2)", "(0 2 1)"}, strs(g.RightCoset(p)))

	assert.Equal(t, "(1 2)", g.LeftCosetRepresentative(p).String())
	assert.Equal(t, "(1 2)", g.RightCosetRepresentative(p).String())
	assert.Equal(t, "(1 2)", g.LeftCosetRepresentative(perm.MustParse("(0 1 2)")).String())
	assert.Equal(t, "(1 2)", g.RightCosetRepresentative(perm.MustParse("(0 2 1)")).String())
}

// TestRepresentatives_Independent verifies that coset representatives depend
// neither on the generator set nor on the coset member used to ask.
func TestRepresentatives_Independent(t *testing.T) {
	probes := parseAll("(5 6)", "(0 6 7)", "(2 8)(3 9)", "-(0 1)")

	var groups []*group.Group
	for _, gens := range sym6 {
		groups = append(groups, group.New(parseAll(gens...)))
	}

	for _, p := range probes {
		wantLeft := groups[0].LeftCosetRepresentative(p)
		wantRight := groups[0].RightCosetRepresentative(p)
		for _, g := range groups[1:] {
			assert.True(t, wantLeft.Equal(g.LeftCosetRepresentative(p)), "left %v", p)
			assert.True(t, wantRight.Equal(g.RightCosetRepresentative(p)), "right %v", p)
		}

		g := groups[0]
		for _, q := range g.LeftCoset(p) {
			require.True(t, wantLeft.Equal(g.LeftCosetRepresentative(q)), "left via %v", q)
		}
		for _, q := range g.RightCoset(p) {
			require.True(t, wantRight.Equal(g.RightCosetRepresentative(q)), "right via %v", q)
		}
	}
}

// TestRepresentatives_Members returns the identity for members.
func TestRepresentatives_Members(t *testing.T) {
	g := group.New(parseAll("(0 1 2)", "(0 1)"))
	for _, p := range g.Elements() {
		assert.True(t, g.LeftCosetRepresentative(p).IsIdentity())
		assert.True(t, g.RightCosetRepresentative(p).IsIdentity())
	}
	assert.True(t, g.CanonicalRepresentative().Equal(perm.Identity()))

	// a negative identity is not a member: its coset is -G and its minimum
	// is the negative identity
	neg := perm.MustParse("-()")
	assert.Equal(t, "-()", g.RightCosetRepresentative(neg).String())
	assert.Equal(t, "-()", g.LeftCosetRepresentative(neg).String())
	assert.Equal(t, "()", g.CanonicalRepresentative().String())
}

// TestZeroGroup documents that a Group must come from New.
func TestZeroGroup(t *testing.T) {
	var g group.Group
	assert.Panics(t, func() { g.Contains(perm.Identity()) })
	assert.Equal(t, 1, group.New(nil).Order())
}

// TestSignedGroup_TieBreak orders equal images positive first.
func TestSignedGroup_TieBreak(t *testing.T) {
	g := group.New(parseAll("-(0 1)", "(0 1)"))
	require.Equal(t, 4, g.Order())
	rep := g.CanonicalRepresentative()
	assert.True(t, rep.IsIdentity())
	assert.Equal(t, 1, rep.Sign())
}

// TestWithLogger emits debug entries on generation and extension.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := group.New(parseAll("(0 1)"), group.WithLogger(logger))
	g.AddGenerator(perm.MustParse("(1 2)"))

	out := buf.String()
	assert.Contains(t, out, "generated group")
	assert.Contains(t, out, "extended group")
	assert.Contains(t, out, "to=6")

	assert.Panics(t, func() { group.WithLogger(nil) })
}
