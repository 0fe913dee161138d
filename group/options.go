package group

import "github.com/charmbracelet/log"

// Option customizes a Group at construction time.
type Option func(*groupConfig)

type groupConfig struct {
	logger *log.Logger
	check  bool
}

// WithLogger attaches a logger that receives debug entries for every
// (re)generation and extension. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *groupConfig) {
		c.logger = l
	}
}

// WithConsistencyCheck verifies after every (re)generation that the element
// list has no duplicates and is closed under the generators. A failure means
// generation itself is broken and panics.
// Complexity: adds O(|G| · k · n) per generation.
func WithConsistencyCheck() Option {
	return func(c *groupConfig) {
		c.check = true
	}
}

func newConfig(opts []Option) groupConfig {
	var c groupConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
