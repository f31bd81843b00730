package split

// Option configures a split call or a Splitter.
type Option func(*config)

type config struct {
	skipEmpty bool
}

func defaultConfig() config {
	return config{
		skipEmpty: false,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSkipEmpty drops zero-length tokens from the result (default: false).
func WithSkipEmpty(skip bool) Option {
	return func(c *config) {
		c.skipEmpty = skip
	}
}
