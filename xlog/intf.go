package xlog

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) String() string {
	return string(lvl)
}

func (lvl logLevel) zapLevel() zapcore.Level {
	return parseLogLevel(string(lvl))
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

var encoderMap = map[logEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

// stdOut is shared by every logger without an explicit writer,
// so a single flush goroutine serves the process.
var stdOut zapcore.WriteSyncer = &zapcore.BufferedWriteSyncer{
	WS:            os.Stdout,
	Size:          512 * 1024,
	FlushInterval: 30 * time.Second,
}

// Banner is printed once per logger, before the first entry,
// in the representation matching the logger encoder.
type Banner interface {
	JSON() string
	PlainText() string
}

// xLogCore keeps what is needed to rebuild a core for a
// component child logger with another encoder config.
type xLogCore interface {
	writeSyncer() zapcore.WriteSyncer
	outEncoder() func(cfg zapcore.EncoderConfig) zapcore.Encoder

	zapcore.Core
}

// XLogger is implemented by the Uber zap logger.
//
// ErrorStack prints an infra.ErrorStack as structured fields
// (message, upstream errors and frames) instead of the zap
// stacktrace string, so a log aggregator is able to parse it.
//
// The context variants add the fields registered by
// WithXLoggerContextFieldExtract, like the list kind.
type XLogger interface {
	zap() *zap.Logger

	Level() string
	Sync() error
	Banner(banner Banner)

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)

	InfoContext(ctx context.Context, msg string, fields ...zap.Field)
	ErrorStackContext(ctx context.Context, err error, msg string, fields ...zap.Field)

	Logf(lvl zapcore.Level, format string, args ...any)
	ErrorStackf(err error, format string, args ...any)
}
