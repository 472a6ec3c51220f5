package builder

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
)

// Config carries the listener and runtime settings the transport
// collaborator consumes. The core itself opens no sockets; it only
// records and validates these values.
type Config struct {
	Host       string `env:"KEEL_HOST" envDefault:"0.0.0.0"`
	Port       int    `env:"KEEL_PORT" envDefault:"8080"`
	Workers    int    `env:"KEEL_WORKERS" envDefault:"4"`
	LogLevel   string `env:"KEEL_LOG_LEVEL" envDefault:"info"`
	ServerName string `env:"KEEL_SERVER_NAME" envDefault:"keel"`
}

func defaultConfig() Config {
	return Config{
		Host:       "0.0.0.0",
		Port:       8080,
		Workers:    4,
		LogLevel:   "info",
		ServerName: "keel",
	}
}

// Addr returns the host:port pair in dial/listen notation.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SlogLevel maps the textual log level to a slog.Level,
// defaulting to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks the settings for values no transport could serve.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
