package levenshtein

// pruned decides whether every completion routing through the tile whose
// incoming carry is in, at absolute origin (y,x), is strictly worse than
// wStar. Returning true skips the tile (spec §4.2).
//
// For each index i in [0,tileSize] it examines two candidate entry cells,
// one on the top edge and one on the left edge, and computes the minimum
// remaining path cost to the matrix's bottom-right corner. |deltaW-deltaH|
// is always a valid lower bound on that remaining cost (every extra
// column must be inserted or deleted), so if any candidate's bound is
// already <= wStar, the tile cannot be skipped.
//
// sameLength computes the bound from the tile's own (x,y) coordinates
// directly when h == w. With h == w, |(w-x)-(h-y)| reduces to |x-y|, so
// both forms give the same values; the shortcut is never required for
// correctness (spec §9).
func pruned(in *carryRecord, y, x, tileSize, h, w int, sameLength bool, wStar int64) bool {
	for i := 0; i <= tileSize; i++ {
		var topBound, leftBound int64
		if sameLength {
			topBound = int64(abs(x+i-y)) + in.horizontal[i]
			leftBound = int64(abs(x-y-i)) + in.vertical[i]
		} else {
			topBound = remainingLowerBound(x+i, y, h, w) + in.horizontal[i]
			leftBound = remainingLowerBound(x, y+i, h, w) + in.vertical[i]
		}
		if topBound <= wStar || leftBound <= wStar {
			return false
		}
	}

	return true
}

// remainingLowerBound is the minimum possible cost of any path from cell
// (x,y) to the matrix's bottom-right corner, ignoring the cell's own
// value: |remaining columns - remaining rows|.
func remainingLowerBound(x, y, h, w int) int64 {
	return int64(abs((w - x) - (h - y)))
}
