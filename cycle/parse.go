package cycle

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// notation is the grammar root: an optional minus sign followed by zero or
// more parenthesised index lists.
//
//	"-(0 1)(2, 3, 4)"  →  Negative=true, Cycles=[[0 1] [2 3 4]]
type notation struct {
	Negative bool         `@"-"?`
	Cycles   []*indexList `@@*`
}

type indexList struct {
	Points []int `"(" ( @Int ( ","? @Int )* )? ")"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var notationParser = participle.MustBuild[notation](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// Parse reads unsigned cycle notation such as "(0 1 2)(3 4)" or "(0,1)".
// The empty string and "()" both denote the identity.
//
// Errors: ErrSyntax (wrapped with the parser's position message) for malformed
// input or a leading minus sign, ErrRepeatedIndex for (0 1 0).
func Parse(s string) (Cycle, error) {
	c, sign, err := ParseSigned(s)
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		return nil, fmt.Errorf("%w: unexpected sign in %q", ErrSyntax, s)
	}

	return c, nil
}

// ParseSigned reads cycle notation with an optional leading minus sign and
// returns the cycles together with the sign (+1 or -1).
func ParseSigned(s string) (Cycle, int, error) {
	expr, err := notationParser.ParseString("", s)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	c := make(Cycle, 0, len(expr.Cycles))
	for _, l := range expr.Cycles {
		if len(l.Points) == 0 {
			continue
		}
		c = append(c, l.Points)
	}
	if err = c.Validate(); err != nil {
		return nil, 0, err
	}
	sign := 1
	if expr.Negative {
		sign = -1
	}

	return c, sign, nil
}
