// Package padding supplies the host-side collaborator the levenshtein
// engine itself deliberately does not: right-padding a sequence to a
// multiple of the engine's tile size with a caller-chosen sentinel.
//
// The engine never pads or falls back on its own (spec §1, Non-goals);
// callers whose inputs aren't already shaped that way use this package,
// or a reference O(H·W) DP, instead.
package padding

import "errors"

// ErrInvalidTileSize indicates tileSize <= 0.
var ErrInvalidTileSize = errors.New("padding: tileSize must be positive")

// Pad right-pads seq with sentinel until its length is the next multiple
// of tileSize (returning seq unchanged, not copied, if it already is).
// The caller is responsible for accounting for the sentinel's
// contribution to any downstream distance computation — this package has
// no visibility into how many sentinels were appended to the other side.
func Pad[S comparable](seq []S, tileSize int, sentinel S) ([]S, error) {
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	remainder := len(seq) % tileSize
	if remainder == 0 {
		return seq, nil
	}

	padded := make([]S, len(seq), len(seq)+tileSize-remainder)
	copy(padded, seq)
	for i := 0; i < tileSize-remainder; i++ {
		padded = append(padded, sentinel)
	}

	return padded, nil
}
