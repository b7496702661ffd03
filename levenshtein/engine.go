package levenshtein

import (
	"runtime"

	"github.com/alitto/pond/v2"
)

// Engine computes the Levenshtein distance between sequences of S using
// the tiled wavefront DP scheme (spec §4.5). Create one with New, call
// Init once with the two input lengths, then Compute as many times as
// needed for sequences of that shape; Close releases the worker pool.
//
// An Engine is not safe for concurrent Compute calls against the same
// instance — the carry store and scratch pool are reused across calls to
// avoid reallocating them, so concurrent Computes would race on that
// shared state. Concurrency lives inside a single Compute call, across
// the tiles of each wavefront level.
type Engine[S comparable] struct {
	tileSize int
	workers  int
	pool     pond.Pool
	scratch  *scratchPool

	initialized bool
	swapped     bool // true if Init's (h,w) order was flipped to keep h<=w
	sameLength  bool
	h, w        int // internal lengths, h<=w
	ht, wt      int // tile-grid dimensions
	levels      int // ht+wt-1

	store *carryStore
}

// New constructs an Engine with the given options applied over the
// reference defaults (tile size 64, worker count GOMAXPROCS).
func New[S comparable](opts ...Option) *Engine[S] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tileSize <= 0 {
		o.tileSize = defaultTileSize
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return &Engine[S]{tileSize: o.tileSize, workers: o.workers}
}

// TileSize returns B, the engine's configured tile edge length, so hosts know
// what multiple to pad their inputs to.
func (e *Engine[S]) TileSize() int { return e.tileSize }

// Init validates the two input lengths, internally reorders them so that
// the shorter one is H, and allocates the carry store and scratch pool.
// Both lengths must be positive multiples of TileSize(), or Init returns
// ErrBadShape and leaves the engine unchanged.
func (e *Engine[S]) Init(lenDown, lenLeft int) error {
	if lenDown <= 0 || lenLeft <= 0 || lenDown%e.tileSize != 0 || lenLeft%e.tileSize != 0 {
		return ErrBadShape
	}

	h, w := lenDown, lenLeft
	e.swapped = w < h
	if e.swapped {
		h, w = w, h
	}
	e.sameLength = h == w
	e.h, e.w = h, w
	e.ht, e.wt = h/e.tileSize, w/e.tileSize
	e.levels = e.ht + e.wt - 1

	e.store = newCarryStore(e.wt, e.tileSize)
	e.scratch = newScratchPool(e.workers, e.tileSize)
	if e.pool != nil {
		e.pool.StopAndWait()
	}
	e.pool = newPool(e.workers)
	e.initialized = true

	return nil
}

// Compute returns the Levenshtein distance between a and b. Their lengths
// must match the pair passed to Init, in either order: Compute(a,b) and
// Compute(b,a) both succeed as long as Init was told the matching pair of
// lengths, and both return the same distance.
func (e *Engine[S]) Compute(a, b []S) (int64, error) {
	if !e.initialized {
		return 0, ErrNotInitialized
	}

	down, left := a, b
	if len(a) == e.w && len(b) == e.h {
		down, left = b, a
	} else if len(a) != e.h || len(b) != e.w {
		return 0, ErrLengthMismatch
	}

	return e.runScheduler(down, left), nil
}

// Close releases the engine's worker pool. Safe to call on an engine that
// was never initialized.
func (e *Engine[S]) Close() {
	if e.pool != nil {
		e.pool.StopAndWait()
		e.pool = nil
	}
}

// Distance computes the Levenshtein distance between a and b in one call,
// padding-free: both lengths must already be positive multiples of the
// (possibly overridden) tile size. Use levenshtein/padding to pad callers
// whose inputs don't line up.
func Distance[S comparable](a, b []S, opts ...Option) (int64, error) {
	eng := New[S](opts...)
	defer eng.Close()

	if err := eng.Init(len(a), len(b)); err != nil {
		return 0, err
	}

	return eng.Compute(a, b)
}
