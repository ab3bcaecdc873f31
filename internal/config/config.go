// SPDX-License-Identifier: MIT

// Package config loads the intarray command-line defaults from the
// environment. Command-line flags override every value loaded here.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-backed defaults of the CLI.
type Config struct {
	// Format is the output encoding: text, yaml or json.
	Format string `env:"INTARRAY_FORMAT" envDefault:"text"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"INTARRAY_LOG_LEVEL" envDefault:"info"`
	// Input is the matrix document path; "-" reads standard input.
	Input string `env:"INTARRAY_INPUT" envDefault:"-"`
}

// ParseEnv loads configuration from the given environment variables.
func ParseEnv(target any, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Environ returns the process environment as a name to value map.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// LoadFrom resolves a Config from environ. Unset keys take their defaults;
// a nil environ reads the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = Environ()
	}
	var cfg Config
	if err := ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
