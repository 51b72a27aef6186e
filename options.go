package list

import "github.com/sirupsen/logrus"

// Option is a node pool configuration option.
type Option interface {
	apply(*poolOptions)
}

type poolOptions struct {
	logger   logrus.FieldLogger
	capacity int
}

func newDefaultPoolOptions() poolOptions {
	return poolOptions{
		logger:   logrus.StandardLogger(),
		capacity: 0,
	}
}

// WithCapacity option configures the pool with the maximum number of live nodes.
//
// The zero value configures unbounded capacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *poolOptions) {
		if capacity < 0 {
			panic("list: invalid capacity")
		}
		opts.capacity = capacity
	})
}

// WithLogger option configures the pool logger.
//
// The nil value configures the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *poolOptions) {
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		opts.logger = logger
	})
}

type funcOption func(*poolOptions)

func (o funcOption) apply(opts *poolOptions) {
	o(opts)
}
