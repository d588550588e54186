// Package logging builds the zap loggers used by the memns commands.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables consulted when a field is left empty.
const (
	EnvLevel  = "MEMNS_LOG_LEVEL"
	EnvFormat = "MEMNS_LOG_FORMAT"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string // stdout, stderr, or file path
}

// FromEnv fills empty fields of cfg from the environment and defaults.
func FromEnv(cfg Config) Config {
	if cfg.Level == "" {
		cfg.Level = envOr(EnvLevel, "info")
	}
	if cfg.Format == "" {
		cfg.Format = envOr(EnvFormat, "console")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "stderr"
	}
	return cfg
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// New builds a logger from cfg. The console format uses zap's development
// encoder; anything else logs JSON.
func New(cfg Config) (*zap.Logger, error) {
	cfg = FromEnv(cfg)

	var config zap.Config
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	config.OutputPaths = []string{cfg.OutputPath}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	return config.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
