package deref

import (
	"fmt"

	"github.com/erraggy/oasref/document"
)

// DefaultMaxDepth is the default recursion depth guard for Resolve.
// Well-formed documents stay far below it; exceeding it is a fatal
// TooDeep error.
const DefaultMaxDepth = 100

// Option configures a Resolve call.
type Option func(*resolveConfig) error

// resolveConfig holds the effective configuration after applying options.
type resolveConfig struct {
	maxDepth int
	logger   document.Logger
}

func newResolveConfig(opts ...Option) (*resolveConfig, error) {
	cfg := &resolveConfig{
		maxDepth: DefaultMaxDepth,
		logger:   document.NopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(depth int) Option {
	return func(cfg *resolveConfig) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used during resolution. Resolution logs at
// debug level only; the default discards everything.
func WithLogger(logger document.Logger) Option {
	return func(cfg *resolveConfig) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}
