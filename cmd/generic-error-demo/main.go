// Command generic-error-demo builds a small error chain with the configured
// factory and logs it.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/thanhminhmr/go-generic-error/generic"
	"github.com/thanhminhmr/go-generic-error/log"
)

func main() {
	app := fx.New(
		fx.Provide(log.ConsoleLogger),
		fx.WithLogger(log.InitFxLogger),
		generic.Module,
		fx.Invoke(run),
	)
	if err := app.Start(context.Background()); err != nil {
		os.Exit(1)
	}
	if err := app.Stop(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(logger *zerolog.Logger, factory *generic.Factory) error {
	_, err := os.Open("/nonexistent/settings.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	cause := factory.FromError(err, generic.WithContext(map[string]any{"path": "/nonexistent/settings.yaml"}))
	failure := factory.New("cannot load settings",
		generic.WithCode(2),
		generic.WithType("settings"),
		generic.WithPrevious(cause),
	)
	failure.AddContext(map[string]any{"attempt": 1})

	config := factory.Config()
	if _, err := failure.GetTrace(config.TraceOptions, config.TraceLimit); err != nil {
		logger.Warn().Err(err).Msg("Cannot capture stack trace")
	}
	logger.WithLevel(failure.GetSeverity().Level()).Err(failure).Msg("Settings unavailable")

	first, err := failure.GetFirst()
	if err != nil {
		return err
	}
	logger.Info().Str("type", first.GetType()).Str("message", first.GetMessage()).Msg("Root cause")
	return nil
}
