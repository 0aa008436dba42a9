package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger; services and handlers log through it in
// the Infow/Errorw key-value style.
type Logger struct {
	*zap.SugaredLogger
}

func toZapLevel(s string) zapcore.Level {
	switch s {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

// consoleCore writes human-readable lines to stdout. The timestamp column is
// dropped: at a 10ms control tick it is pure noise, and the event log carries
// the authoritative timestamps anyway.
func consoleCore(level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	enc := zapcore.NewConsoleEncoder(cfg)
	return zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))
}

func newZapLogger(level string) *Logger {
	l := zap.New(consoleCore(toZapLevel(level))).Named("brewmatic")
	return &Logger{SugaredLogger: l.Sugar()}
}
