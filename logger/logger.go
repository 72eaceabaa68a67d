package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	Development bool
}

// DefaultConfig returns the configuration used for release builds.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Development: false,
	}
}

// DevelopmentConfig returns the configuration used with -debug.
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// New builds a zap logger from cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}
	// Frame systems can log every tick.
	zapConfig.Sampling = nil

	return zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Init builds the process logger. Until Init succeeds L returns a no-op logger.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the process logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the process logger.
func L() *zap.Logger {
	return global.Load()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}
