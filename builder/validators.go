// Package builder provides validation helpers to enforce
// parameter contracts in generator constructors.
package builder

// validateMin ensures that got ≥ min. The returned error wraps
// ErrTooFewPoints and reads "<Method>: n=<got> < min=<min>: …".
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewPoints)
	}

	return nil
}
