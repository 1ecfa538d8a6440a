// Package logx is the process-wide logging facade, backed by zap.
package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls which messages are emitted.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(LevelInfo)
	sugar       = newLogger().Sugar()
)

func newLogger() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atomicLevel,
	)
	return zap.New(core, zap.AddCallerSkip(1))
}

// SetLevel changes the minimum emitted level at runtime.
func SetLevel(level Level) { atomicLevel.SetLevel(level) }

func Debug(args ...any)                 { sugar.Debug(args...) }
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }

func Info(args ...any)                 { sugar.Info(args...) }
func Infof(format string, args ...any) { sugar.Infof(format, args...) }

func Warn(args ...any)                 { sugar.Warn(args...) }
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }

func Error(args ...any)                 { sugar.Error(args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

// Fatalf logs and exits with status 1.
func Fatalf(format string, args ...any) { sugar.Fatalf(format, args...) }
