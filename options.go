package jpatch

import (
	"context"
	"log/slog"

	"github.com/brunoga/jpatch/internal/core"
)

// Option configures Apply and Find.
type Option interface {
	apply(*config)
}

type config struct {
	parse  core.ParseOptions
	logger *slog.Logger
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) {
	f(c)
}

// WithPointerEscaping makes paths use RFC 6901 escaping: "~1" in a member
// name stands for "/" and "~0" for "~". By default path tokens are taken
// verbatim.
func WithPointerEscaping() Option {
	return optionFunc(func(c *config) {
		c.parse.Unescape = true
	})
}

// WithLogger makes Apply report every operation, and the first failure, to l
// at debug level.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *config) {
		c.logger = l
	})
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

func (c *config) debug(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}
