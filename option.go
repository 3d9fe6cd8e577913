package shiftset

// Options configures a Set.
type Options struct {
	logger Logger
}

// DefaultOptions returns the default configuration: no logging.
func DefaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures a Set using the functional options pattern.
type Option func(*Options)

// WithLogger sets the logger used by Check to report invariant
// violations. The default discards everything.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}
