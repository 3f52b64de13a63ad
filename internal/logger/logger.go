package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin structured-logging facade: every entry carries the
// service name, an action tag and optional key/value fields.
type Logger struct {
	zl *zap.Logger
}

func New(service string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.MessageKey = "action"
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	zl := zap.Must(cfg.Build())
	return &Logger{zl: zl.With(zap.String("service", service))}
}

func (l *Logger) Info(action string, fields map[string]any) {
	l.zl.Info(action, toZap(fields)...)
}

func (l *Logger) Debug(action string, fields map[string]any) {
	l.zl.Debug(action, toZap(fields)...)
}

func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.zl.Error(action, append(toZap(fields), zap.Error(err))...)
}

func toZap(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
