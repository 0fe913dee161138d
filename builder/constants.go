// Package builder defines shared constants used by generator constructors,
// ensuring consistent validation and error context.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCyclic is the canonical name for the Cyclic constructor.
	MethodCyclic = "Cyclic"
	// MethodDihedral is the canonical name for the Dihedral constructor.
	MethodDihedral = "Dihedral"
	// MethodSymmetric is the canonical name for the Symmetric constructor.
	MethodSymmetric = "Symmetric"
	// MethodAlternating is the canonical name for the Alternating constructor.
	MethodAlternating = "Alternating"
	// MethodAntisymmetric is the canonical name for the Antisymmetric constructor.
	MethodAntisymmetric = "Antisymmetric"
	// MethodParsed is the canonical name for the Parsed constructor.
	MethodParsed = "Parsed"
)

//-----------------------------------------------------------------------------
// Minimum Point Counts
//-----------------------------------------------------------------------------

// MinCyclicPoints is the smallest size of a cyclic group; C1 is trivial.
const MinCyclicPoints = 1

// MinDihedralPoints is the smallest polygon. Below three points the
// reflection coincides with a rotation and the order is not 2n.
const MinDihedralPoints = 3

// MinSymmetricPoints is the smallest symmetric group; Sym(1) is trivial.
const MinSymmetricPoints = 1

// MinAlternatingPoints is the smallest n with a 3-cycle.
const MinAlternatingPoints = 3

// MinAntisymmetricPoints is the smallest antisymmetric group.
const MinAntisymmetricPoints = 1

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultOffset is the first point every constructor acts on.
const DefaultOffset = 0

// DefaultOddSign is the sign attached to odd generators.
const DefaultOddSign = 1
