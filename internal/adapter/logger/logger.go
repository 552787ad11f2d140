package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging port used across the services. Every
// entry carries a machine-readable action name alongside the human message.
type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type zapLogger struct {
	lg *zap.Logger
}

func New(service string) Logger {
	hostname, _ := os.Hostname()

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	lg, err := cfg.Build(
		zap.WithCaller(false),
		zap.Fields(zap.String("service", service), zap.String("hostname", hostname)),
	)
	if err != nil {
		lg = zap.NewNop()
	}

	return &zapLogger{lg: lg}
}

func (l *zapLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.lg.Info(message, l.fields(action, requestID, details)...)
}

func (l *zapLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.lg.Debug(message, l.fields(action, requestID, details)...)
}

func (l *zapLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	fields := append(l.fields(action, requestID, details), zap.Error(err))
	l.lg.Error(message, fields...)
}

func (l *zapLogger) fields(action, requestID string, details map[string]interface{}) []zap.Field {
	fields := []zap.Field{zap.String("action", action)}
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("details", details))
	}
	return fields
}
