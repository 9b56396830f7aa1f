package infrastructure

import (
	"strconv"
	"time"
)

const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
)

// rawConfig is the environment as viper decodes it, before validation
type rawConfig struct {
	Port            string `mapstructure:"port"`
	LogLevel        string `mapstructure:"log_level"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// Config holds the runtime settings of a single service process
type Config struct {
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Address is the listen address for the configured port on all interfaces
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}
