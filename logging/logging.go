// Package logging configures a structured, rotating logger for the
// HTTP and service layers. Core codec packages never import it — they
// are pure and report failures through stegerr instead.
//
// Grounded on the wider retrieval pack's answer to the teacher's own
// bracketed log.Printf("[INFO] ...") convention: zap.SugaredLogger for
// structured, leveled logging, and lumberjack for file rotation, the
// way ausocean-av wires its capture pipeline's logger. The bracket
// tags are kept as message prefixes so call sites read the same as
// the teacher's own log lines.
package logging

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where logs go and how verbose they are. Every field
// falls back to an environment variable, then a default, matching the
// teacher's PORT/GIN_MODE/CORS_ORIGINS convention in main.go.
type Config struct {
	Level      string // "debug", "info", "warn", "error"
	FilePath   string // empty disables file output, stderr only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ConfigFromEnv reads LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE_MB,
// LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, falling back to sane defaults.
func ConfigFromEnv() Config {
	return Config{
		Level:      envOr("LOG_LEVEL", "info"),
		FilePath:   envOr("LOG_FILE", ""),
		MaxSizeMB:  envIntOr("LOG_MAX_SIZE_MB", 50),
		MaxBackups: envIntOr("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: envIntOr("LOG_MAX_AGE_DAYS", 28),
	}
}

// New builds a *zap.SugaredLogger writing to stderr and, if
// cfg.FilePath is set, to a rotating lumberjack-backed file
// simultaneously.
func New(cfg Config) (*zap.SugaredLogger, error) {
	level := parseLevel(cfg.Level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}
	if cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger.Sugar(), nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Info logs a bracket-tagged info message, matching the teacher's
// log.Printf("[INFO] ...") call sites.
func Info(l *zap.SugaredLogger, msg string, args ...interface{}) {
	l.Infof("[INFO] "+msg, args...)
}

// Debug logs a bracket-tagged debug message.
func Debug(l *zap.SugaredLogger, msg string, args ...interface{}) {
	l.Debugf("[DEBUG] "+msg, args...)
}

// Warn logs a bracket-tagged warning.
func Warn(l *zap.SugaredLogger, msg string, args ...interface{}) {
	l.Warnf("[WARN] "+msg, args...)
}

// Error logs a bracket-tagged error.
func Error(l *zap.SugaredLogger, msg string, args ...interface{}) {
	l.Errorf("[ERROR] "+msg, args...)
}
