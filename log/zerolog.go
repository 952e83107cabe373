package log

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixNano
}

// ConsoleLogger creates a human readable logger on stderr and a context that
// carries it, canceled when the fx application stops.
func ConsoleLogger(lifecycle fx.Lifecycle) (*zerolog.Logger, context.Context) {
	return NewLogger(lifecycle, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02T15:04:05.000000000Z07:00",
	})
}

// NewLogger is ConsoleLogger writing to output.
func NewLogger(lifecycle fx.Lifecycle, output io.Writer) (*zerolog.Logger, context.Context) {
	logger := zerolog.New(output).With().Timestamp().Caller().Logger()
	// create the global context with lifecycle cancel binding and the logger
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return zerolog.Ctx(ctx), ctx
}
