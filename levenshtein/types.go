package levenshtein

// defaultTileSize is the reference tile size B from the design: large
// enough to amortize the per-tile dispatch overhead, small enough that a
// tile's two (B+1)-length carry vectors and one worker's scratch stay
// comfortably in L1.
const defaultTileSize = 64

// infinity is a value larger than any achievable distance for the input
// sizes this engine targets. It propagates correctly under min and +1
// without saturation logic: 1+infinity still sorts above every real value.
const infinity int64 = 1_000_000_000

// carryRecord is a tile's left/top edge (as an incoming carry) or a
// neighbor's about-to-be-consumed edge (as an outgoing carry). Index 0 of
// both vectors is the shared diagonal anchor; indices 1..tileSize are the
// cells along the respective edge.
type carryRecord struct {
	vertical   []int64 // left edge, length tileSize+1
	horizontal []int64 // top edge, length tileSize+1
}

func newCarryRecord(tileSize int) carryRecord {
	return carryRecord{
		vertical:   make([]int64, tileSize+1),
		horizontal: make([]int64, tileSize+1),
	}
}

// options holds engine configuration gathered from functional Options.
type options struct {
	tileSize int
	workers  int
}

// Option configures an Engine. See WithTileSize and WithWorkers.
type Option func(*options)

// WithTileSize overrides the reference tile size (default 64). Both input
// lengths passed to Init must be positive multiples of this value.
func WithTileSize(b int) Option {
	return func(o *options) { o.tileSize = b }
}

// WithWorkers overrides the worker-pool size (default runtime.GOMAXPROCS(0)).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func defaultOptions() options {
	return options{tileSize: defaultTileSize, workers: 0}
}
