package pure

import "go.uber.org/zap"

// Option configures a Memoizer or a CachedAttribute.
type Option func(*options)

type options struct {
	name   string
	logger *zap.Logger
}

// WithName sets the name reported in logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger routes cache misses and invalidations to logger at debug level.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(defaultName string, opts []Option) options {
	o := options{
		name:   defaultName,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
