package depot

import "github.com/rs/zerolog"

type Option func(*storage)

// WithConfig panics if cfg does not validate.
func WithConfig(cfg Config) Option {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return func(s *storage) {
		s.config = cfg
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *storage) {
		s.logger = logger
	}
}

// WithRegistry makes the storage assign component ids from registry instead of
// a fresh one.
func WithRegistry(registry *Registry) Option {
	return func(s *storage) {
		s.registry = registry
	}
}
