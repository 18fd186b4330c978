package client

import (
	"go.uber.org/zap"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
//
// The method set matches resty's logger, so the same implementation also
// receives the transport's own warnings and debug output.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZapLogger is a [RequestLogger] backed by a zap SugaredLogger.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps s as a [RequestLogger]. A nil s yields a no-op logger.
func NewZapLogger(s *zap.SugaredLogger) *ZapLogger {
	if s == nil {
		s = zap.NewNop().Sugar()
	}

	return &ZapLogger{s: s}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.s.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.s.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.s.Debugf(format, v...) }

// defaultLoggerConfig writes JSON to stderr at info level and above. Sampling
// is disabled so repeated failure bodies are never dropped.
func defaultLoggerConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil

	return cfg
}

func defaultRequestLogger() RequestLogger {
	logger, err := defaultLoggerConfig().Build()
	if err != nil {
		return &NoopLogger{}
	}

	return NewZapLogger(logger.Named("connectwise").Sugar())
}
