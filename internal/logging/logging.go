// Package logging wraps zap with the severity tags the scraper reports with:
// success, info, debug, warning, error and fatal.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityDebug   Severity = "debug"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal"
)

var aliases = map[string]Severity{
	"s":       SeveritySuccess,
	"success": SeveritySuccess,
	"i":       SeverityInfo,
	"info":    SeverityInfo,
	"d":       SeverityDebug,
	"debug":   SeverityDebug,
	"w":       SeverityWarning,
	"warn":    SeverityWarning,
	"warning": SeverityWarning,
	"e":       SeverityError,
	"error":   SeverityError,
	"f":       SeverityFatal,
	"fatal":   SeverityFatal,
}

// ParseSeverity maps a tag to a severity. Unknown tags are debug.
func ParseSeverity(tag string) Severity {
	if sev, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return sev
	}
	return SeverityDebug
}

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a production (JSON) or development (console) logger.
func New(mode, level string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

func NewFromZap(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}

func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

// Log writes msg at the severity named by tag.
func (l *Logger) Log(msg, tag string, keysAndValues ...any) {
	switch ParseSeverity(tag) {
	case SeveritySuccess:
		l.Success(msg, keysAndValues...)
	case SeverityInfo:
		l.Info(msg, keysAndValues...)
	case SeverityWarning:
		l.Warn(msg, keysAndValues...)
	case SeverityError:
		l.Error(msg, keysAndValues...)
	case SeverityFatal:
		l.Fatal(msg, keysAndValues...)
	default:
		l.Debug(msg, keysAndValues...)
	}
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

// Success is info with a status marker, so finished milestones stand out.
func (l *Logger) Success(msg string, keysAndValues ...any) {
	l.SugaredLogger.Infow(msg, append([]any{"status", string(SeveritySuccess)}, keysAndValues...)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.SugaredLogger.Fatalw(msg, keysAndValues...)
}

func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
