package main

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xsll/xlog"
)

func newXLogger(opts ...xlog.XLoggerOption) xlog.XLogger {
	return xlog.NewXLogger(append([]xlog.XLoggerOption{
		xlog.WithXLoggerEncoder(xlog.PlainText),
		xlog.WithXLoggerContextFieldExtract(ctxFieldKind),
		xlog.WithXLoggerContextFieldExtract(ctxFieldScenario),
	}, opts...)...)
}

func registerDemo(lc fx.Lifecycle, logger xlog.XLogger, cfg *demoConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return runDemo(logger, cfg)
		},
	})
}

// newApp takes the logger from outside of the container, so it
// is still usable to report the errors of a failed build.
func newApp(logger xlog.XLogger) *fx.App {
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Provide(
			func() xlog.XLogger { return logger },
			loadDemoConfig,
		),
		fx.Invoke(registerDemo),
	)
}

// run flushes the logger on every return path.
func run(logger xlog.XLogger) (err error) {
	defer func() {
		if err != nil {
			logger.ErrorStackf(err, "singly linked list demo exits abnormally")
		}
		// fsync on a pipe or tty fails, only the buffer flush matters.
		_ = logger.Sync()
	}()

	app := newApp(logger)
	if err = app.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err = app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	return app.Stop(stopCtx)
}

func main() {
	if err := run(newXLogger()); err != nil {
		os.Exit(1)
	}
}
