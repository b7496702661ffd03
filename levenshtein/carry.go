package levenshtein

// carryStore is the double-buffered ring of per-column carry records
// spanning one wavefront level (spec §4.3). old holds the carries that
// are ready to be consumed at the current level; new accumulates the
// carries for the following level. swap exchanges the two roles — no
// data is copied, ownership of each slice moves between the two arrays.
type carryStore struct {
	old []carryRecord
	new []carryRecord
}

// newCarryStore allocates wt+1 carry records per buffer, the maximum
// number of tile columns a level can ever address (including the
// sentinel column wt used only as a write target for the rightmost
// tile's right edge).
func newCarryStore(wt, tileSize int) *carryStore {
	s := &carryStore{
		old: make([]carryRecord, wt+1),
		new: make([]carryRecord, wt+1),
	}
	for i := range s.old {
		s.old[i] = newCarryRecord(tileSize)
		s.new[i] = newCarryRecord(tileSize)
	}

	return s
}

// swap exchanges the old/new roles at the end of a wavefront level.
func (s *carryStore) swap() {
	s.old, s.new = s.new, s.old
}

// seedOrigin writes the level-0 base case (the identity sequence
// 0,1,2,...,tileSize) into old[0].vertical and old[0].horizontal, the
// boundary of the DP matrix's top-left corner (spec §3, "Initial state").
func (s *carryStore) seedOrigin(tileSize int) {
	seedBoundary(s.old[0].vertical, 0, tileSize)
	seedBoundary(s.old[0].horizontal, 0, tileSize)
}

// seedBoundary writes level*tileSize + i into v[i] for i in [0,tileSize],
// the DP values along a row or column of the matrix that touches the
// global top or left boundary at the given wavefront level.
func seedBoundary(v []int64, level, tileSize int) {
	base := int64(level * tileSize)
	for i := 0; i <= tileSize; i++ {
		v[i] = base + int64(i)
	}
}

// setInfinity marks every cell of v as pruned so downstream tiles ignore it.
func setInfinity(v []int64) {
	for i := range v {
		v[i] = infinity
	}
}
