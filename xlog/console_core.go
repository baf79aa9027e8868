package xlog

import (
	"go.uber.org/zap/zapcore"
)

var _ xLogCore = (*consoleCore)(nil)

type consoleCore struct {
	*commonCore
}

func newConsoleCore(
	lvlEnabler zapcore.LevelEnabler,
	enc func(cfg zapcore.EncoderConfig) zapcore.Encoder,
	ws zapcore.WriteSyncer,
) xLogCore {
	cc := &consoleCore{
		commonCore: &commonCore{
			lvlEnabler: lvlEnabler,
			ws:         ws,
			enc:        enc,
		},
	}
	cc.core = zapcore.NewCore(cc.enc(encoderConfig("callAt", "fn")), cc.ws, cc.lvlEnabler)
	return cc
}
