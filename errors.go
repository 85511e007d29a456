package slottree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("slottree: invalid configuration")
	// ErrCorrupted signals a violated structural tree invariant, found by Check.
	ErrCorrupted = errors.New("slottree: tree structure corrupted")
)
