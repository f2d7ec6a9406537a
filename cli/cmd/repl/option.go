package repl

// defaultPrecision is the number of digits printed after the decimal point.
const defaultPrecision = 6

type config struct {
	prepare   func(string) string
	precision int
}

// Option applies a configuration option to a [Session].
type Option func(config) config

func makeConfig(opts ...Option) config {
	c := config{precision: defaultPrecision}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithPrepare returns an option that rewrites each input line with fn before
// it is executed.
func WithPrepare(fn func(string) string) Option {
	return func(c config) config {
		c.prepare = fn

		return c
	}
}

// WithPrecision returns an option that sets the number of digits printed
// after the decimal point. A negative precision prints the shortest form that
// represents the value exactly.
func WithPrecision(digits int) Option {
	return func(c config) config {
		c.precision = digits

		return c
	}
}
