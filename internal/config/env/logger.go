package env

import (
	"fmt"
	"os"
	"spin_wheel/internal/config"
	"strings"
)

const (
	logLevelEnvName = "LOG_LEVEL"
)

type loggerConfig struct {
	level string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	level := strings.ToLower(strings.TrimSpace(os.Getenv(logLevelEnvName)))
	if len(level) == 0 {
		level = "info"
	}

	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid %s %q", logLevelEnvName, level)
	}

	return &loggerConfig{
		level: level,
	}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}
