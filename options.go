package refltab

type options struct {
	logger *Logger
}

// Option configures table construction.
type Option func(*options)

func defaultOptions() options {
	return options{logger: NoopLogger()}
}

// WithLogger attaches a logger to the table. Construction and flag
// mutations emit Debug records. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
