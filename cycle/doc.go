// Package cycle implements cycle notation for permutations of {0,…,n-1}.
//
// A Cycle is an ordered list of index cycles such as (0 1 2)(3 4), where
// every index moves to the position of its predecessor in the chain:
// the image of 0 under (0 1 2) is 1, the image of 1 is 2, the image of 2 is 0.
//
// ✨ Key features:
//   - FromImage: decompose an explicit image into disjoint cycles
//   - ToImage: rotate an identity array through every cycle
//   - overlapping input cycles, e.g. (1 2)(2 3), compose left to right
//   - Parse / String: the textual notation "(0 1 2)(3 4)", "-(0 1)"
//
// ⚙️ Usage:
//
//	c, err := cycle.Parse("(0 1 2)(3 4)")
//	if err != nil {
//		// errors.Is(err, cycle.ErrSyntax)
//	}
//	img, _ := c.ToImage(0) // [1 2 0 4 3]
//
// Equality between cycles is defined by the image they induce, not by their
// textual form: (0 1 2) and (1 2 0) are equal.
//
// Complexity:
//
//   - FromImage / ToImage: O(n)
//   - Parse: O(len(s))
package cycle
