package lang

import "github.com/ardnew/infix/log"

// Option applies a configuration option to config.
type Option func(config) config

// config holds the settings of an [Env].
type config struct {
	logger   *log.Logger
	rightPow bool
}

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithLogger returns an option that directs the Env's diagnostics to logger.
// Without it, the package default logger from [log.Default] is used.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = &logger

		return c
	}
}

// RightAssociativePow returns an option that controls whether exponentiation
// groups right to left, so that 2^3^2 is 2^(3^2) = 512. By default all
// operators, including ^, group left to right and 2^3^2 is (2^3)^2 = 64.
func RightAssociativePow(enable bool) Option {
	return func(c config) config {
		c.rightPow = enable

		return c
	}
}
