package pure

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a memo at construction.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	name     string
	sizeHint int
	now      func() time.Time
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes cache events to logger.
// Hits, misses and stores are logged at debug level, failures at warn and clears at info.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithName tags every log record of the memo with name.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithSizeHint preallocates room for n entries. It is not a bound.
func WithSizeHint(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.sizeHint = n
		}
	}
}

// withClock replaces time.Now; tests only.
func withClock(now func() time.Time) Option {
	return func(cfg *config) {
		cfg.now = now
	}
}
