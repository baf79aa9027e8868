package xlog

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xsll/lib/infra"
)

var _ XLogger = (*xLogger)(nil)

type contextKey string

// ContextKey wraps a field name into the context key the logger extracts.
func ContextKey(field string) any {
	return contextKey(field)
}

type ctxField struct {
	key   contextKey
	mapTo string
}

// xLogger is wrapper logger of Uber zap logger.
type xLogger struct {
	logger     atomic.Pointer[zap.Logger]
	level      zap.AtomicLevel
	ctxFields  []ctxField // sorted by key, read only after build
	out        zapcore.WriteSyncer
	encoder    logEncoderType
	bannerOnce sync.Once
}

func (l *xLogger) zap() *zap.Logger {
	return l.logger.Load()
}

func (l *xLogger) Level() string {
	return l.level.Level().String()
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

// Banner bypasses the encoder, it is written as is.
func (l *xLogger) Banner(banner Banner) {
	if banner == nil || l.out == nil {
		return
	}
	l.bannerOnce.Do(func() {
		text := banner.JSON()
		if l.encoder == PlainText {
			text = banner.PlainText()
		}
		_, _ = l.out.Write([]byte(strings.TrimRight(text, "\n") + "\n"))
	})
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	if err != nil {
		fields = append([]zap.Field{zap.String("error", err.Error())}, fields...)
	}
	l.logger.Load().Error(msg, fields...)
}

func errorStackFields(err error, fields []zap.Field) []zap.Field {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if es, ok := err.(infra.ErrorStack); ok && es != nil {
		newFields = append(newFields, zap.Inline(es))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	return append(newFields, fields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	l.logger.Load().Error(msg, errorStackFields(err, fields)...)
}

func (l *xLogger) ErrorStackf(err error, format string, args ...any) {
	l.logger.Load().Error(fmt.Sprintf(format, args...), errorStackFields(err, nil)...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

// contextFields prepends the registered context values to fields.
// Keys absent from ctx are skipped.
func (l *xLogger) contextFields(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil || len(l.ctxFields) == 0 {
		return fields
	}
	newFields := make([]zap.Field, 0, len(l.ctxFields)+len(fields))
	for _, f := range l.ctxFields {
		if v := ctx.Value(f.key); v != nil {
			newFields = append(newFields, zap.Any(f.mapTo, v))
		}
	}
	return append(newFields, fields...)
}

func (l *xLogger) InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, l.contextFields(ctx, fields)...)
}

func (l *xLogger) ErrorStackContext(ctx context.Context, err error, msg string, fields ...zap.Field) {
	l.logger.Load().Error(msg, errorStackFields(err, l.contextFields(ctx, fields))...)
}

// componentLogger derives a child logger named after a component.
// Its entries carry the component name instead of the caller.
func componentLogger(parent XLogger, name string) XLogger {
	child := &xLogger{}
	if xl, ok := parent.(*xLogger); ok {
		child.level = xl.level
		child.ctxFields = xl.ctxFields
		child.out = xl.out
		child.encoder = xl.encoder
	}
	child.logger.Store(parent.zap().
		Named(name).
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			cc, ok := core.(xLogCore)
			if !ok {
				panic("[XLogger] core is not xLogCore")
			}
			wrapped, err := WrapCore(cc, encoderConfig(coreKeyIgnored, coreKeyIgnored))
			if err != nil {
				panic(err)
			}
			return wrapped
		})),
	)
	return child
}

type loggerCfg struct {
	ctxFields map[string]string
	out       zapcore.WriteSyncer
	encoder   logEncoderType
	level     *zapcore.Level
}

func (cfg *loggerCfg) build() *xLogger {
	xl := &xLogger{
		out:     cfg.out,
		encoder: cfg.encoder,
	}
	if xl.out == nil {
		xl.out = stdOut
	}
	if cfg.level != nil {
		xl.level = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		xl.level = zap.NewAtomicLevelAt(parseLogLevel(os.Getenv("XLOG_LVL")))
	}

	keys := lo.Keys(cfg.ctxFields)
	sort.Strings(keys)
	xl.ctxFields = lo.Map(keys, func(key string, _ int) ctxField {
		return ctxField{key: contextKey(key), mapTo: cfg.ctxFields[key]}
	})

	xl.logger.Store(zap.New(
		newConsoleCore(xl.level, encoderMap[xl.encoder], xl.out),
		zap.AddCallerSkip(1), // Report the caller of the xLogger method.
		zap.AddCaller(),
	))
	return xl
}

type XLoggerOption func(*loggerCfg) error

// NewXLogger panics on invalid options, the logger is
// expected to be built once at the process start.
func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	return cfg.build()
}

// WithXLoggerWriteSyncer replaces the buffered stdout writer.
func WithXLoggerWriteSyncer(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("[XLogger] nil write syncer")
		}
		cfg.out = ws
		return nil
	}
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("[XLogger] unknown encoder")
		}
		cfg.encoder = logEnc
		return nil
	}
}

// WithXLoggerLevel takes precedence over the XLOG_LVL env.
func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

// WithXLoggerContextFieldExtract registers a context key, set with
// ContextKey(field), to be logged by the context variants. The
// value is logged under mapTo if present, else under field.
func WithXLoggerContextFieldExtract(field string, mapTo ...string) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if len(field) == 0 {
			return nil
		}
		if cfg.ctxFields == nil {
			cfg.ctxFields = make(map[string]string, 4)
		}
		cfg.ctxFields[field] = field
		if len(mapTo) > 0 && len(mapTo[0]) > 0 {
			cfg.ctxFields[field] = mapTo[0]
		}
		return nil
	}
}

// parseLogLevel falls back to debug for empty or unknown levels.
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LogLevelInfo.String():
		return zapcore.InfoLevel
	case LogLevelWarn.String():
		return zapcore.WarnLevel
	case LogLevelError.String():
		return zapcore.ErrorLevel
	default:
	}
	return zapcore.DebugLevel
}
