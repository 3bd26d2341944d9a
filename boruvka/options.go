package boruvka

import "go.uber.org/zap"

// Option configures a Boruvka value at construction time.
type Option func(*options)

// options holds the resolved configuration. Defaults: no-op logger, no metrics.
type options struct {
	logger  *zap.Logger
	metrics *Metrics
}

// WithLogger routes per-round Debug records and the completion Info record to lg.
// A nil logger keeps the no-op default.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.logger = lg
		}
	}
}

// WithMetrics records rounds, merges and round durations into m.
// The same Metrics may be shared by any number of Boruvka values.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
