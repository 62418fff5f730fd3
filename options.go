package bitvec

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a BitVector constructor.
type Option func(*options)

// WithLogger sets the logger used to report growth at debug level.
//
// If nil or a Logger without an underlying slog.Logger is passed,
// nothing is logged.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil && l.Logger == nil {
			l = nil
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified on every growth.
//
// If nil is passed, no metrics are recorded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
