package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/group"
)

// TestConcatenate compares against literal expected generator sets.
func TestConcatenate(t *testing.T) {
	tests := []struct {
		name        string
		lhs         []string
		lhsSize     int
		lhsExcludes []int
		rhs         []string
		rhsExcludes []int
		want        []string
	}{
		{
			name: "trivial groups", lhs: []string{"()"}, lhsSize: 8, lhsExcludes: []int{4},
			rhs: []string{"()"}, rhsExcludes: []int{42},
			want: nil,
		},
		{
			name: "everything dropped", lhs: []string{"(0 1)"}, lhsSize: 7, lhsExcludes: []int{1},
			rhs: []string{"(4 2)"}, rhsExcludes: []int{4},
			want: nil,
		},
		{
			name: "partial drop", lhs: []string{"(0 1)", "(2 3)"}, lhsSize: 7, lhsExcludes: []int{1},
			rhs: []string{"(4 2)", "(0 1)(3 5)"}, rhsExcludes: []int{4},
			want: []string{"(1 2)", "(7 8)(10 11)"},
		},
		{
			name: "no rhs excludes", lhs: []string{"(0 1)", "(2 3)"}, lhsSize: 8, lhsExcludes: []int{5},
			rhs: []string{"(4 2)", "(0 1)(3 5)"}, rhsExcludes: nil,
			want: []string{"(0 1)", "(2 3)", "(12 10)", "(8 9)(11 13)"},
		},
		{
			name: "several gaps", lhs: []string{"(0 4 6)"}, lhsSize: 6, lhsExcludes: []int{2, 5, 10},
			rhs: []string{"(4 2)", "(1 5 9)"}, rhsExcludes: []int{3, 4},
			want: []string{"(0 3 4)", "(7 9 13)"},
		},
		{
			name: "adjacent excludes", lhs: []string{"(1 4 6)", "(4 6)"}, lhsSize: 6, lhsExcludes: []int{0, 5},
			rhs: []string{"(2 3)", "(3 4)"}, rhsExcludes: []int{0, 1, 5},
			want: []string{"(0 3 4)", "(3 4)", "(6 7)", "(7 8)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lhs := group.New(parseAll(tt.lhs...))
			rhs := group.New(parseAll(tt.rhs...))
			got, err := group.Concatenate(lhs, tt.lhsSize, rhs, tt.lhsExcludes, tt.rhsExcludes)
			require.NoError(t, err)

			want := group.New(parseAll(tt.want...))
			assert.True(t, group.Equal(want, got), "got %v, want %v", got, want)
		})
	}
}

// TestConcatenate_ExcludeOrder needs three consecutive gaps below a point.
func TestConcatenate_ExcludeOrder(t *testing.T) {
	lhs := group.New(parseAll("(0 4)"))
	got, err := group.Concatenate(lhs, 2, group.New(nil), []int{3, 1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0 1)"}, strs(got.Generators()))
}

// TestConcatenate_Errors covers argument validation.
func TestConcatenate_Errors(t *testing.T) {
	g := group.New(parseAll("(0 1)"))

	_, err := group.Concatenate(g, -1, g, nil, nil)
	assert.ErrorIs(t, err, group.ErrNegativeSize)

	_, err = group.Concatenate(g, 2, g, []int{-3}, nil)
	assert.ErrorIs(t, err, group.ErrNegativeIndex)

	_, err = group.Concatenate(g, 2, g, nil, []int{0, -1})
	assert.ErrorIs(t, err, group.ErrNegativeIndex)
}

// TestConcatenate_Options forwards options to the result.
func TestConcatenate_Options(t *testing.T) {
	a := group.New(parseAll("(0 1 2)", "(0 1)"))
	got, err := group.Concatenate(a, 3, a, nil, nil, group.WithConsistencyCheck())
	require.NoError(t, err)
	assert.Equal(t, 36, got.Order())
}
