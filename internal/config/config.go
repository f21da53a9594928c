// Package config loads the optional TOML configuration used by the server
// and CLI front ends. The library core takes no configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Server contains the HTTP server settings.
type Server struct {
	Bind           string `toml:"bind"`
	ReadTimeout    int    `toml:"read_timeout"`     // seconds
	WriteTimeout   int    `toml:"write_timeout"`    // seconds
	MaxRequestSize int    `toml:"max_request_size"` // bytes
	Concurrency    int    `toml:"concurrency"`      // 0 means GOMAXPROCS
	WarmUp         bool   `toml:"warm_up"`
}

// Log contains logging settings shared by the server and CLI.
type Log struct {
	File string `toml:"file"` // empty means stdout
	JSON bool   `toml:"json"`
}

// Config is the root configuration document.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Bind:           ":8080",
			ReadTimeout:    30,
			WriteTimeout:   30,
			MaxRequestSize: 10 * 1024 * 1024,
			Concurrency:    0,
			WarmUp:         true,
		},
	}
}

// Load reads the TOML file at path merged over the defaults. An empty path
// returns the defaults; a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must not be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("server timeouts must be non-negative")
	}
	if c.Server.MaxRequestSize <= 0 {
		return errors.New("server.max_request_size must be greater than 0")
	}
	if c.Server.Concurrency < 0 {
		return errors.New("server.concurrency must be non-negative")
	}
	return nil
}
