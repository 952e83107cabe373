package log

import (
	"github.com/rs/zerolog"
	"go.uber.org/dig"
	"go.uber.org/fx/fxevent"
)

// fxLogger writes fx events to zerolog. Failures are logged at error level
// with their root cause, lifecycle hooks at trace level, the rest at debug.
type fxLogger struct {
	logger *zerolog.Logger
}

// InitFxLogger is meant for fx.WithLogger.
func InitFxLogger(logger *zerolog.Logger) fxevent.Logger {
	return fxLogger{logger: logger}
}

func (l fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Trace().Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		l.hook(e.FunctionName, e.CallerName, e.Err, "OnStart")
	case *fxevent.OnStopExecuting:
		l.logger.Trace().Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		l.hook(e.FunctionName, e.CallerName, e.Err, "OnStop")
	case *fxevent.Provided:
		l.event(e.Err).
			Str("constructor", e.ConstructorName).
			Strs("types", e.OutputTypeNames).
			Str("module", e.ModuleName).
			Msg(outcome(e.Err, "Provided", "Provide failed"))
	case *fxevent.Decorated:
		l.event(e.Err).
			Str("decorator", e.DecoratorName).
			Strs("types", e.OutputTypeNames).
			Str("module", e.ModuleName).
			Msg(outcome(e.Err, "Decorated", "Decorate failed"))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error().
				Err(dig.RootCause(e.Err)).
				Str("function", e.FunctionName).
				Str("module", e.ModuleName).
				Str("stack", e.Trace).
				Msg("Invoke failed")
		}
	case *fxevent.Stopping:
		l.logger.Info().Stringer("signal", e.Signal).Msg("Received signal")
	case *fxevent.Stopped:
		l.event(e.Err).Msg(outcome(e.Err, "Stopped", "Stop failed"))
	case *fxevent.RollingBack:
		l.logger.Error().Err(dig.RootCause(e.StartErr)).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		l.event(e.Err).Msg(outcome(e.Err, "Rolled back", "Rollback failed"))
	case *fxevent.Started:
		l.event(e.Err).Msg(outcome(e.Err, "Started", "Start failed"))
	case *fxevent.LoggerInitialized:
		l.event(e.Err).
			Str("function", e.ConstructorName).
			Msg(outcome(e.Err, "Initialized logger", "Logger initialization failed"))
	}
}

// event returns an error event carrying the root cause of err, or a debug event
// when err is nil.
func (l fxLogger) event(err error) *zerolog.Event {
	if err != nil {
		return l.logger.Error().Err(dig.RootCause(err))
	}
	return l.logger.Debug()
}

func outcome(err error, success string, failure string) string {
	if err != nil {
		return failure
	}
	return success
}

func (l fxLogger) hook(callee string, caller string, err error, name string) {
	if err != nil {
		l.logger.Error().Err(dig.RootCause(err)).Str("callee", callee).Str("caller", caller).Msg(name + " hook failed")
		return
	}
	l.logger.Trace().Str("callee", callee).Str("caller", caller).Msg(name + " hook executed")
}
