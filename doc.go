// Package waveleven is a tiled, anti-diagonal wavefront engine for
// computing the Levenshtein (edit) distance between long sequences on
// shared-memory multicore hardware.
//
// 🚀 What is waveleven?
//
//	The classic O(n·m) edit-distance DP table is partitioned into fixed
//	B×B tiles whose inter-tile dependencies form an anti-diagonal
//	wavefront. Tiles on the same wavefront level are independent and run
//	in parallel across a bounded worker pool; a monotone best-outcome
//	estimate lets whole tiles be skipped once no path through them can
//	beat it, without ever changing the result.
//
// ✨ Key features:
//   - Exact: pruning never discards a tile that could improve the answer.
//   - Deterministic: results are bit-identical regardless of worker count.
//   - Generic: works over any comparable element type.
//
// Under the hood, everything lives in two packages:
//
//	levenshtein/         — the tiled wavefront engine itself
//	levenshtein/padding/ — the host-side helper for non-tile-aligned inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/waveleven/levenshtein"
//
//	dist, err := levenshtein.Distance([]byte("ABCDEFGH"), []byte("AXCDYFGH"),
//		levenshtein.WithTileSize(4))
//
// See levenshtein/example_test.go for runnable examples.
package waveleven
