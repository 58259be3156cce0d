package filter

import "github.com/cwbudde/algo-potfield/potfield/physics"

// Config carries the cross-cutting operator settings.
type Config struct {
	// Strict upgrades non-finite samples in an operator result to
	// grid.ErrNonFinite instead of propagating them silently.
	Strict bool

	// Constants is the physical-constant table consumed by Pseudogravity.
	Constants physics.Constants
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default settings: silent non-finite propagation
// and the reference constant table.
func DefaultConfig() Config {
	return Config{Constants: physics.Default()}
}

// WithStrict makes operators fail when the result carries inf or NaN
// samples.
func WithStrict() Option {
	return func(cfg *Config) {
		cfg.Strict = true
	}
}

// WithConstants injects a physical-constant table, usually one loaded from a
// YAML override file via physics.Load.
func WithConstants(c physics.Constants) Option {
	return func(cfg *Config) {
		cfg.Constants = c
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
