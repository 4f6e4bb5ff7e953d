package irreps

// Gauge selects the phase convention of the mode traces.
type Gauge int

const (
	// GaugeAtom applies the lattice-correction phase per atom pair
	// (the r-gauge).
	GaugeAtom Gauge = iota
	// GaugeLattice fixes every phase to one (the R-gauge).
	GaugeLattice
)

// Config holds the per-query numeric settings of the engine. All
// tolerances are explicit here rather than ambient so a query is fully
// reproducible from its inputs.
type Config struct {
	// DegeneracyTolerance chains modes into one block when their
	// frequency gap does not exceed it. Zero keeps only exact ties
	// together.
	DegeneracyTolerance float64
	// GeometricTolerance bounds atom-image and operation-matching
	// distances.
	GeometricTolerance float64
	// Threshold is the minimum projected multiplicity an irrep needs to
	// claim a block.
	Threshold float64
	// ActivityEpsilon is the noise margin of the IR/Raman projections.
	ActivityEpsilon float64
	// Gauge is the trace phase convention.
	Gauge Gauge
	// DisablePairing turns off forced pairing even when the table has no
	// one-dimensional irrep.
	DisablePairing bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults shared by CLI and library use.
func DefaultConfig() Config {
	return Config{
		DegeneracyTolerance: 1e-4,
		GeometricTolerance:  1e-5,
		Threshold:           0.5,
		ActivityEpsilon:     0.1,
	}
}

// WithDegeneracyTolerance sets the frequency tolerance for degenerate
// blocks. Zero is meaningful; negative values are ignored.
func WithDegeneracyTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.DegeneracyTolerance = tol
		}
	}
}

// WithGeometricTolerance sets the geometric matching tolerance.
func WithGeometricTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.GeometricTolerance = tol
		}
	}
}

// WithThreshold sets the acceptance threshold for projections.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.Threshold = threshold
		}
	}
}

// WithActivityEpsilon sets the noise margin of the activity projections.
func WithActivityEpsilon(eps float64) Option {
	return func(cfg *Config) {
		if eps > 0 {
			cfg.ActivityEpsilon = eps
		}
	}
}

// WithGauge selects the trace phase convention.
func WithGauge(gauge Gauge) Option {
	return func(cfg *Config) {
		cfg.Gauge = gauge
	}
}

// WithoutPairing disables forced pairing of modes for tables whose
// smallest irrep is multi-dimensional.
func WithoutPairing() Option {
	return func(cfg *Config) {
		cfg.DisablePairing = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
