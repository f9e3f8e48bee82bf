package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface passed between packages.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// ZapLogger implements Logger on top of a zap core.
type ZapLogger struct {
	base *zap.Logger
}

// Init builds a JSON zap logger at the given level ("debug", "info", "warn",
// "error"; anything else falls back to info).
func Init(logLevel string) (*ZapLogger, error) {
	var level zapcore.Level
	switch logLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		level,
	)

	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return &ZapLogger{base: base}, nil
}

// Close flushes buffered log entries.
func (l *ZapLogger) Close() error {
	if l == nil || l.base == nil {
		return nil
	}
	return l.base.Sync()
}

// The Obj helpers log the given object as a structured field named `key` and
// do not attempt to parse arbitrary kv arrays.

func (l *ZapLogger) InfoObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Info(msg, zap.Any(key, obj))
}

func (l *ZapLogger) DebugObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Debug(msg, zap.Any(key, obj))
}

func (l *ZapLogger) WarnObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Warn(msg, zap.Any(key, obj))
}

func (l *ZapLogger) ErrorObj(msg, key string, obj interface{}) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Error(msg, zap.Any(key, obj))
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) InfoObj(string, string, interface{})  {}
func (NopLogger) DebugObj(string, string, interface{}) {}
func (NopLogger) WarnObj(string, string, interface{})  {}
func (NopLogger) ErrorObj(string, string, interface{}) {}
