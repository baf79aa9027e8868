package xlog

import (
	"time"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger routes the fx lifecycle events into the XLogger
// as a child logger named "Fx".
type FxXLogger struct {
	logger XLogger
}

func NewFxXLogger(logger XLogger) *FxXLogger {
	return &FxXLogger{logger: componentLogger(logger, "Fx")}
}

// outcome logs msg at debug level, or at error level with a
// "failed" suffix when err is not nil.
func (l *FxXLogger) outcome(err error, msg string, fields ...zap.Field) {
	if err != nil {
		l.logger.Error(err, msg+" failed", fields...)
		return
	}
	l.logger.Debug(msg, fields...)
}

func (l *FxXLogger) hook(stage, function, caller string, runtime time.Duration, executed bool, err error) {
	fields := []zap.Field{
		zap.String("function", function),
		zap.String("caller", caller),
	}
	if !executed {
		l.logger.Debug("HOOK "+stage, fields...)
		return
	}
	l.outcome(err, "HOOK "+stage+" executed", append(fields, zap.Duration("in", runtime))...)
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.hook("OnStart", e.FunctionName, e.CallerName, 0, false, nil)
	case *fxevent.OnStartExecuted:
		l.hook("OnStart", e.FunctionName, e.CallerName, e.Runtime, true, e.Err)
	case *fxevent.OnStopExecuting:
		l.hook("OnStop", e.FunctionName, e.CallerName, 0, false, nil)
	case *fxevent.OnStopExecuted:
		l.hook("OnStop", e.FunctionName, e.CallerName, e.Runtime, true, e.Err)
	case *fxevent.Supplied:
		l.outcome(e.Err, "SUPPLY", zap.String("type", e.TypeName), zap.Strings("stacktrace", e.StackTrace))
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("PROVIDE",
				zap.Bool("private", e.Private),
				zap.String("rtype", rtype),
				zap.String("constructor", e.ConstructorName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "PROVIDE failed", zap.Strings("stacktrace", e.StackTrace))
		}
	case *fxevent.Invoking:
		l.logger.Debug("INVOKE", zap.String("function", e.FunctionName))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "INVOKE failed", zap.String("function", e.FunctionName), zap.String("trace", e.Trace))
		}
	case *fxevent.Stopping:
		l.logger.Info("STOPPING", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		l.outcome(e.Err, "STOPPED")
	case *fxevent.RollingBack:
		l.logger.Error(e.StartErr, "START failed, rolling back")
	case *fxevent.RolledBack:
		l.outcome(e.Err, "ROLLBACK")
	case *fxevent.Started:
		l.outcome(e.Err, "RUNNING")
	case *fxevent.LoggerInitialized:
		l.outcome(e.Err, "LOGGER initialized", zap.String("constructor", e.ConstructorName))
	default:
	}
}
