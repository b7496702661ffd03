// Package levenshtein: sentinel error set.
//
// Every precondition violation the engine can detect is reported through
// one of these sentinels, returned directly (never wrapped), so callers
// compare with errors.Is.
package levenshtein

import "errors"

var (
	// ErrBadShape indicates a length passed to Init is not a positive
	// multiple of the tile size.
	ErrBadShape = errors.New("levenshtein: length must be a positive multiple of the tile size")

	// ErrLengthMismatch indicates Compute received sequences whose lengths
	// do not match the pair declared to Init, in either order.
	ErrLengthMismatch = errors.New("levenshtein: sequence length does not match Init")

	// ErrNotInitialized indicates Compute was called before Init succeeded.
	ErrNotInitialized = errors.New("levenshtein: engine not initialized")
)
