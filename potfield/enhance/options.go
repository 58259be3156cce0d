package enhance

// Config carries the cross-cutting transform settings.
type Config struct {
	// Strict upgrades non-finite samples in a result to grid.ErrNonFinite
	// instead of propagating them silently.
	Strict bool
}

// Option mutates a Config.
type Option func(*Config)

// WithStrict makes transforms fail when the result carries inf or NaN
// samples, such as the theta map of a grid with zero-gradient points.
func WithStrict() Option {
	return func(cfg *Config) {
		cfg.Strict = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
