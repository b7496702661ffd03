package levenshtein

import (
	"sync"

	"github.com/alitto/pond/v2"
)

// scratchPool hands out a fixed number of reusable carry records, one per
// concurrent worker, each owned exclusively for the duration of one tile
// (spec §4.3, §5). A tile's kernel call moves its computed vectors out of
// the borrowed record; release replaces them with fresh backing storage
// so the next borrower never observes another tile's data.
type scratchPool struct {
	slots chan *carryRecord
}

func newScratchPool(n, tileSize int) *scratchPool {
	p := &scratchPool{slots: make(chan *carryRecord, n)}
	for i := 0; i < n; i++ {
		rec := newCarryRecord(tileSize)
		p.slots <- &rec
	}

	return p
}

func (p *scratchPool) acquire() *carryRecord { return <-p.slots }

func (p *scratchPool) release(rec *carryRecord, tileSize int) {
	rec.vertical = make([]int64, tileSize+1)
	rec.horizontal = make([]int64, tileSize+1)
	p.slots <- rec
}

// tileOutcome is what one wavefront-level worker reports back for a
// single column; the scheduler applies every outcome sequentially after
// the level's barrier so that the infinity latches and boundary seeding
// never race (spec §9 design note).
type tileOutcome struct {
	column     int
	wasPruned  bool
	lowerBound int64
	bottomEdge []int64 // owned: becomes new carry's horizontal at this column
	rightEdge  []int64 // owned: becomes new carry's vertical at column+1
}

// runScheduler drives the Ht+Wt-1 wavefront levels to completion and
// returns the final edit distance (spec §4.4).
func (e *Engine[S]) runScheduler(down, left []S) int64 {
	e.store.seedOrigin(e.tileSize)

	shift := 0
	infinityColumns := 0
	infinityRows := 0
	addInfinityColumn := false
	addInfinityRow := false
	wStar := int64(e.w)

	for level := 1; level <= e.levels; level++ {
		globalMin := int64(infinity)

		if level > e.ht {
			shift = level - e.ht
			if infinityColumns > 0 {
				infinityColumns--
			}
			if level > e.wt && infinityRows > 0 {
				infinityRows--
			}
		}
		if addInfinityColumn {
			infinityColumns++
			addInfinityColumn = false
		}
		if addInfinityRow {
			infinityRows++
			addInfinityRow = false
		}

		lastTask := level
		if e.wt < lastTask {
			lastTask = e.wt
		}
		lo := shift + infinityColumns
		hi := lastTask - infinityRows

		if hi > lo {
			outcomes := make([]tileOutcome, hi-lo)
			var wg sync.WaitGroup
			for idx, column := 0, lo; column < hi; idx, column = idx+1, column+1 {
				idx, column := idx, column
				wg.Add(1)
				e.pool.Submit(func() {
					defer wg.Done()
					outcomes[idx] = e.runTile(level, column, wStar, down, left)
				})
			}
			wg.Wait()

			for _, outcome := range outcomes {
				column := outcome.column
				if outcome.wasPruned {
					if column == lo {
						addInfinityColumn = true
						setInfinity(e.store.new[column+1].vertical)
					}
					if column == hi-1 {
						addInfinityRow = true
						setInfinity(e.store.new[column].horizontal)
					} else {
						setInfinity(e.store.new[column].horizontal)
						setInfinity(e.store.new[column+1].vertical)
					}

					continue
				}

				e.store.new[column].horizontal = outcome.bottomEdge
				e.store.new[column+1].vertical = outcome.rightEdge
				if outcome.lowerBound < globalMin {
					globalMin = outcome.lowerBound
				}

				if column == lo && level-column < e.ht {
					if column == 0 {
						seedBoundary(e.store.new[column].vertical, level, e.tileSize)
					} else if infinityColumns > 0 {
						setInfinity(e.store.new[column].vertical)
					}
				}
				if column == hi-1 && column < e.wt-1 {
					if infinityRows > 0 {
						setInfinity(e.store.new[column+1].horizontal)
					} else {
						seedBoundary(e.store.new[column+1].horizontal, level, e.tileSize)
					}
				}
			}
		}

		wStar = globalMin
		e.store.swap()
	}

	return e.store.old[e.wt-1].horizontal[e.tileSize]
}

// runTile evaluates the pruning oracle and, if the tile survives, runs
// the tile kernel against one borrowed scratch record. It touches only
// e.store.old[column] (read, then overwritten: the kernel streams its rows
// through in.horizontal) and its own scratch record (read/write), both
// exclusive to this column for the duration of the level, so it is
// safe to run concurrently with every other column's runTile call.
func (e *Engine[S]) runTile(level, column int, wStar int64, down, left []S) tileOutcome {
	row := level - 1 - column
	y, x := row*e.tileSize, column*e.tileSize
	in := &e.store.old[column]

	if pruned(in, y, x, e.tileSize, e.h, e.w, e.sameLength, wStar) {
		return tileOutcome{column: column, wasPruned: true}
	}

	scratch := e.scratch.acquire()
	defer e.scratch.release(scratch, e.tileSize)

	lowerBound := tileKernel(in, scratch, y, x, e.tileSize, down, left, e.h, e.w)

	return tileOutcome{
		column:     column,
		lowerBound: lowerBound,
		bottomEdge: scratch.horizontal,
		rightEdge:  scratch.vertical,
	}
}

// newPool builds the bounded worker pool backing the wavefront scheduler's
// per-level data-parallel dispatch, sized to the engine's configured
// worker count.
func newPool(workers int) pond.Pool {
	return pond.NewPool(workers)
}
