package quick

// Config controls how Check, Shrink, and CheckOccurs drive a property:
// how many trials to run, how large generated values may grow, and
// whether growth scales with trial index. Config is immutable — each
// With* method returns a modified copy rather than mutating the
// receiver, since a field and a method cannot share a name in Go
// (a bare size(n)/trials(n) setter pair becomes WithSize/WithTrials).
type Config struct {
	// Trials is the number of random cases Check attempts before
	// declaring a property proven.
	Trials int

	// Size is the base size parameter passed to Generate.
	Size int

	// Grow scales the effective size up with the trial index, so
	// later trials explore larger values than earlier ones.
	Grow bool

	// Verbose logs progress via the Reporter: the first falsifying
	// value, or the outcome once every trial has passed (for
	// CheckOccurs, the first satisfying value).
	Verbose bool
}

// DefaultConfig returns the engine's baseline configuration: 50 trials,
// base size 8, size growth enabled, not verbose.
func DefaultConfig() Config {
	return Config{
		Trials: 50,
		Size:   8,
		Grow:   true,
	}
}

// WithTrials returns a copy of cfg with Trials set to n.
func (cfg Config) WithTrials(n int) Config {
	cfg.Trials = n
	return cfg
}

// WithSize returns a copy of cfg with Size set to n.
func (cfg Config) WithSize(n int) Config {
	cfg.Size = n
	return cfg
}

// WithGrow returns a copy of cfg with Grow set to on.
func (cfg Config) WithGrow(on bool) Config {
	cfg.Grow = on
	return cfg
}

// WithVerbose returns a copy of cfg with Verbose set to on.
func (cfg Config) WithVerbose(on bool) Config {
	cfg.Verbose = on
	return cfg
}

// sizeAt returns the size parameter to use for the given zero-based
// trial index: size = cfg.Size + trial/8 when Grow is enabled, so the
// effective size is monotonically non-decreasing but grows slowly,
// keeping early trials cheap.
func (cfg Config) sizeAt(trial int) int {
	if !cfg.Grow {
		return cfg.Size
	}
	return cfg.Size + trial/8
}
