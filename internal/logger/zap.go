package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap SugaredLogger to the printf-style logging interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap builds a JSON logger writing to out. LevelNone silences everything
// below fatal.
func NewZap(out io.Writer, level LogLevel) *ZapLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(zapLevel(level)),
	)
	return &ZapLogger{sugar: zap.New(core).Sugar()}
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelNone:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *ZapLogger) Debug(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Info(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warn(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Error(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}
