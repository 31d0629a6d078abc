package fullrec

import (
	"io"
	"log/slog"
	"runtime"
)

// DefaultMaxDepth is the depth limit RunAll applies when none is configured.
// A Go stack overflow is fatal to the whole process, so concurrent runs need
// a bound that turns runaway recursion into ErrDepthExceeded instead.
const DefaultMaxDepth = 1 << 18

type Config struct {
	// Namer supplies fresh binder names. Each Evaluator gets its own unless
	// one is shared explicitly.
	Namer *Namer
	// Logger receives debug records about evaluation. Discarded by default.
	Logger *slog.Logger
	// MaxDepth bounds big-step recursion; zero means unbounded.
	MaxDepth int
	// MaxSteps bounds small-step reduction; zero means unbounded.
	MaxSteps int
	// Workers bounds how many programs RunAll evaluates at once.
	Workers int
}

type Option func(*Config)

func WithNamer(n *Namer) Option {
	return func(cfg *Config) {
		cfg.Namer = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

func WithMaxDepth(n int) Option {
	return func(cfg *Config) {
		cfg.MaxDepth = n
	}
}

func WithMaxSteps(n int) Option {
	return func(cfg *Config) {
		cfg.MaxSteps = n
	}
}

func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Namer == nil {
		cfg.Namer = NewNamer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}
