package infrastructure

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// LoadConfig reads the process environment. Values that are missing or
// malformed fall back to their defaults instead of failing startup.
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	v.SetDefault("port", strconv.Itoa(DefaultPort))
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout.String())
	v.AutomaticEnv()

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &Config{
		Port:            parsePort(raw.Port),
		LogLevel:        parseLogLevel(raw.LogLevel),
		ShutdownTimeout: parseDuration(raw.ShutdownTimeout, DefaultShutdownTimeout),
	}, nil
}

// parsePort accepts a base-10 integer in 1..65535 with an optional sign.
// Anything else, including trailing text or a fraction, yields the default.
func parsePort(raw string) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort
	}
	return port
}

func parseLogLevel(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if _, err := zapcore.ParseLevel(raw); err != nil || raw == "" {
		return DefaultLogLevel
	}
	return raw
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
