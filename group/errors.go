package group

import "errors"

// Sentinel errors returned by Concatenate.
var (
	// ErrNegativeSize indicates a negative left-hand sequence size.
	ErrNegativeSize = errors.New("group: sequence size must be non-negative")

	// ErrNegativeIndex indicates a negative excluded index.
	ErrNegativeIndex = errors.New("group: excluded index must be non-negative")
)

const (
	panicNilLogger   = "group: WithLogger(nil)"
	panicConsistency = "group: consistency check failed: "
)
