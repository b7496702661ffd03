// Package levenshtein computes the Levenshtein (edit) distance between two
// sequences of comparable elements using a tiled anti-diagonal wavefront
// dynamic-programming engine with bounded-cost pruning.
//
// 🚀 What it does:
//
//	The classic O(n·m) DP table is partitioned into fixed-size B×B tiles.
//	Tile (r,c) depends only on tile (r-1,c) and (r,c-1), so all tiles on
//	the same anti-diagonal r+c are mutually independent and are computed
//	in parallel across a bounded worker pool. A monotone best-outcome
//	estimate W* lets the scheduler skip whole tiles once no path through
//	them can beat the current best, without ever changing the result.
//
// ✨ Key properties:
//   - Exact: pruning never discards a tile that could improve the answer.
//   - Deterministic: the result does not depend on worker count.
//   - Generic: works over any comparable element type, not just bytes.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/waveleven/levenshtein"
//
//	dist, err := levenshtein.Distance([]rune("ABCDEFGH"), []rune("AXCDYFGH"),
//		levenshtein.WithTileSize(4))
//	// or, to reuse allocations across repeated same-shape calls:
//	eng := levenshtein.New[rune](levenshtein.WithTileSize(64))
//	if err := eng.Init(len(a), len(b)); err != nil { ... }
//	dist, err := eng.Compute(a, b)
//	eng.Close()
//
// Both input lengths must be positive multiples of the tile size
// (reference default 64); callers whose inputs don't line up should pad
// them first with the levenshtein/padding subpackage.
//
// Performance:
//
//	Time:   O(H·W / P) amortized across P workers, minus pruned tiles.
//	Memory: O(W/B) carry records plus O(P) scratch records.
//
// The tile kernel is documented in tile.go and the pruning bound in
// prune.go.
package levenshtein
