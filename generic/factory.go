package generic

// Factory creates records with configured defaults. Options given by the
// caller are applied after the defaults and override them.
type Factory struct {
	config *Config
}

// NewFactory creates a Factory, using DefaultConfig when config is nil.
func NewFactory(config *Config) *Factory {
	if config == nil {
		config = DefaultConfig()
	}
	return &Factory{config: config}
}

func (f *Factory) Config() Config {
	return *f.config
}

// New is New with the configured defaults. File, line and an eager trace,
// when enabled, point at the caller of Factory.New.
func (f *Factory) New(message string, options ...Option) Error {
	return New(message, append(f.defaults(1), options...)...)
}

// FromError is FromError with the configured defaults on the outermost record,
// except the type which stays the Go type of err.
func (f *Factory) FromError(err error, options ...Option) Error {
	return FromError(err, append(f.defaults(3)[1:], options...)...)
}

func (f *Factory) defaults(skip int) []Option {
	options := []Option{
		WithType(f.config.Type),
		WithSeverity(f.config.Severity),
	}
	if f.config.Caller {
		options = append(options, WithCaller(skip))
	}
	if f.config.EagerTrace {
		options = append(options, WithStackTrace(skip, f.config.TraceOptions, f.config.TraceLimit))
	}
	return options
}
