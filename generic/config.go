package generic

import (
	"fmt"

	"github.com/thanhminhmr/go-generic-error/configuration"
)

// ConfigPrefix is the prefix of the environment variables read by LoadConfig.
const ConfigPrefix = "GENERIC_ERROR"

// Config holds the defaults a Factory applies to the records it creates.
type Config struct {
	Severity     Severity    `env:"SEVERITY"`
	Type         string      `env:"TYPE" validate:"required"`
	Caller       bool        `env:"CALLER"`
	EagerTrace   bool        `env:"EAGER_TRACE"`
	TraceOptions TraceOption `env:"TRACE_OPTIONS"`
	TraceLimit   int         `env:"TRACE_LIMIT" validate:"min=0,max=4096"`
}

func init() {
	configuration.SetDefault("GENERIC_ERROR_SEVERITY", "error")
	configuration.SetDefault("GENERIC_ERROR_TYPE", DefaultType)
	configuration.SetDefault("GENERIC_ERROR_CALLER", "true")
	configuration.SetDefault("GENERIC_ERROR_EAGER_TRACE", "false")
	configuration.SetDefault("GENERIC_ERROR_TRACE_OPTIONS", DefaultTraceOptions.String())
	configuration.SetDefault("GENERIC_ERROR_TRACE_LIMIT", "0")
}

// DefaultConfig returns the configuration LoadConfig gives when no variable
// is set.
func DefaultConfig() *Config {
	return &Config{
		Severity:     SeverityError,
		Type:         DefaultType,
		Caller:       true,
		TraceOptions: DefaultTraceOptions,
	}
}

// LoadConfig reads the GENERIC_ERROR_* variables from the environment.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := configuration.Load(config, ConfigPrefix); err != nil {
		return nil, fmt.Errorf("generic: load config: %w", err)
	}
	return config, nil
}
