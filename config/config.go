// Package config loads sidecar settings from the environment, reading a .env
// file first when one exists.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	IPC     IPCConfig
	AI      AIConfig
	Logging LoggingConfig
}

type IPCConfig struct {
	SocketPath string
	// CompressThreshold is the envelope size in bytes above which frames are
	// lz4 compressed; 0 disables compression.
	CompressThreshold int
}

type AIConfig struct {
	Seed      uint64
	SeedFixed bool // false when the seed came from the clock
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		IPC:     loadIPCConfig(),
		AI:      ai,
		Logging: loadLoggingConfig(),
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadIPCConfig() IPCConfig {
	threshold, _ := strconv.Atoi(getEnv("IPC_COMPRESS_THRESHOLD", "16384"))
	return IPCConfig{
		SocketPath:        getEnv("ORRERY_SOCKET", "/tmp/orrery.sock"),
		CompressThreshold: threshold,
	}
}

func loadAIConfig() (AIConfig, error) {
	raw := getEnv("AI_SEED", "")
	if raw == "" {
		return AIConfig{Seed: uint64(time.Now().UnixNano())}, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return AIConfig{}, fmt.Errorf("parse AI_SEED: %w", err)
	}
	return AIConfig{Seed: seed, SeedFixed: true}, nil
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		JSONFormat: getEnv("LOG_JSON", "false") == "true",
	}
}

func (c *Config) validate() error {
	if c.IPC.SocketPath == "" {
		return errors.New("ORRERY_SOCKET must not be empty")
	}
	if c.IPC.CompressThreshold < 0 {
		return fmt.Errorf("IPC_COMPRESS_THRESHOLD must be >= 0, got %d", c.IPC.CompressThreshold)
	}
	if _, ok := parseLogLevel(c.Logging.Level); !ok {
		return fmt.Errorf("unknown LOG_LEVEL %q", c.Logging.Level)
	}
	return nil
}

// Logger builds the process logger from the logging settings.
func (c LoggingConfig) Logger() *slog.Logger {
	level, _ := parseLogLevel(c.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLogLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// getEnv treats an empty variable as unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
