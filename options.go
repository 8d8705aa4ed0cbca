package idkey

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	presenter        Presenter
	selection        SelectionReader
}

// Option configures a Key.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring passes.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &idkey.BasicMetricsCollector{}
//	key := idkey.New(idkey.WithMetricsCollector(metrics))
//	// ... use key ...
//	stats := metrics.GetStats()
//	fmt.Printf("Passes: %d, Avg latency: %dns\n", stats.PassCount, stats.PassAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for loads and passes.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithPresenter sets the sink for visibility, count and reset notifications.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		if p == nil {
			p = NoopPresenter{}
		}
		o.presenter = p
	}
}

// WithSelectionReader sets where ApplyFilters reads the active selection from.
func WithSelectionReader(r SelectionReader) Option {
	return func(o *options) {
		o.selection = r
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		presenter:        NoopPresenter{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
