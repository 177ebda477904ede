package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config contains runtime configuration required by the service.
// Values are read once at startup and never change.
type Config struct {
	Addr      string // HTTP bind address, e.g. ":8000"
	LogLevel  string // zerolog level name, e.g. "info"
	LogPretty bool   // console output for local development
}

// Load reads optional values from environment variables. Every value has a
// default so the service runs out-of-the-box with no environment at all.
func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		addr = ":8000"
	}
	if !strings.Contains(addr, ":") {
		return Config{}, errors.New(`ADDR must be "host:port" or ":port"`)
	}

	level := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if level == "" {
		level = "info"
	}

	pretty := false
	if v := strings.TrimSpace(os.Getenv("LOG_PRETTY")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New("LOG_PRETTY must be a boolean")
		}
		pretty = b
	}

	return Config{
		Addr:      addr,
		LogLevel:  level,
		LogPretty: pretty,
	}, nil
}
