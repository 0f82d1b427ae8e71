package covering

import "github.com/dbsmedya/mincover/internal/logger"

// Option configures a MinimalCoverings run.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Pruning skips branches on components with prime index. Those are
	// algebraically maximal: any further enlargement saturates them to the
	// whole universe, so the branches contribute nothing. On by default;
	// disabling it must not change the result set, only the running time.
	Pruning bool

	// Verbose promotes discovery notifications from debug to info level.
	Verbose bool

	// Logger receives discovery notifications and summaries. Defaults to a
	// no-op logger; notification failures never abort the search.
	Logger *logger.Logger
}

// DefaultOptions returns the default search configuration: pruning on,
// quiet, no-op logger.
func DefaultOptions() Options {
	return Options{
		Pruning: true,
		Verbose: false,
		Logger:  logger.NewNop(),
	}
}

// WithPruning enables or disables the maximal-component prune.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Pruning = on
	}
}

// WithVerbose enables info-level discovery notifications.
func WithVerbose(on bool) Option {
	return func(o *Options) {
		o.Verbose = on
	}
}

// WithLogger sets the logger receiving search notifications.
// A nil logger has no effect (the no-op logger is retained).
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
