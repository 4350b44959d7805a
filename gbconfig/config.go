// Package gbconfig centralizes the numeric tunables shared by lp3, rotate,
// cycle, round and the root gbalance package. It follows the builder
// package's functional-options shape: a New constructor applies documented
// defaults, then each Option in order, so every tunable flows through one
// plain struct instead of hidden globals.
package gbconfig

// Config holds the tunables named by the Ebenlendr-Krcal-Sgall rounding
// procedure. None of these are inferred from the input graph; all have the
// defaults fixed by the algorithm unless a caller overrides them for testing
// or experimentation.
type Config struct {
	// Eps is the equality tolerance used to decide whether an LP variable is
	// effectively 0 or 1 (defines the fractional support E_x) and whether an
	// edge constraint residual is within numerical noise.
	Eps float64

	// BigThreshold is the weight above which an edge counts as "big"
	// (p_e > BigThreshold). Fixed by the algorithm at 0.5.
	BigThreshold float64

	// LeafThreshold is the R1a/R1b decision boundary: a leaf is assigned
	// directly (R1a) when alpha <= LeafThreshold, otherwise its big-support
	// tree is reoriented (R1b). Fixed by the algorithm at 0.75.
	LeafThreshold float64

	// ApproxRatio is the guaranteed approximation factor of the algorithm
	// (1.75). It is not a free parameter; it is recorded here so callers can
	// assert against it without a magic literal.
	ApproxRatio float64

	// BinarySearchTol is the relative convergence tolerance for Optimize's
	// outer binary search: search stops once (hi-lo)/lo < BinarySearchTol.
	BinarySearchTol float64

	// LeafTieBreak selects the admissible rule when alpha lands exactly at
	// LeafThreshold (within Eps): true prefers R1a (leaf assignment), the
	// default; false applies R1b (tree assignment). Recorded explicitly
	// per spec.md's Open Questions rather than left as an accidental branch
	// order.
	LeafTieBreak bool
}

// Option mutates a Config before it is handed to lp3/round/gbalance. Option
// constructors never panic; a nil Option is a no-op when passed to New.
type Option func(*Config)

// New returns the default Config with each Option applied, in order.
//
// Defaults: Eps=1e-9, BigThreshold=0.5, LeafThreshold=0.75, ApproxRatio=1.75,
// BinarySearchTol=1e-6, LeafTieBreak=true (ties resolve to R1a).
func New(opts ...Option) Config {
	cfg := Config{
		Eps:             1e-9,
		BigThreshold:    0.5,
		LeafThreshold:   0.75,
		ApproxRatio:     1.75,
		BinarySearchTol: 1e-6,
		LeafTieBreak:    true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithEps overrides the zero/one equality tolerance.
func WithEps(eps float64) Option {
	return func(c *Config) { c.Eps = eps }
}

// WithBigThreshold overrides the big-edge weight threshold.
func WithBigThreshold(t float64) Option {
	return func(c *Config) { c.BigThreshold = t }
}

// WithLeafThreshold overrides the R1a/R1b decision boundary.
func WithLeafThreshold(t float64) Option {
	return func(c *Config) { c.LeafThreshold = t }
}

// WithBinarySearchTol overrides Optimize's binary-search convergence tolerance.
func WithBinarySearchTol(tol float64) Option {
	return func(c *Config) { c.BinarySearchTol = tol }
}
