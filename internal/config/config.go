// Package config loads server configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything outside the LLM provider settings, which
// are discovered separately from VIDQUIZ_* variables.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`

		// AllowedOrigins is the CORS allowlist. Empty means any
		// origin, suitable for local use.
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Database struct {
		// Path is the SQLite file. Empty resolves to the default
		// data directory.
		Path string `yaml:"path"`
	} `yaml:"database"`

	Log struct {
		// Mode is "dev" or "prod".
		Mode string `yaml:"mode"`
	} `yaml:"log"`

	Quiz struct {
		DefaultCount int `yaml:"default_count"`
		MinCount     int `yaml:"min_count"`
		MaxCount     int `yaml:"max_count"`

		// WindowSize is the number of transcript segments per chunk.
		WindowSize int `yaml:"window_size"`
	} `yaml:"quiz"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Log.Mode = "dev"
	cfg.Quiz.DefaultCount = 10
	cfg.Quiz.MinCount = 10
	cfg.Quiz.MaxCount = 20
	cfg.Quiz.WindowSize = 5
	return cfg
}

// Load reads YAML config from path on top of defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Quiz.MinCount > cfg.Quiz.MaxCount {
		return cfg, fmt.Errorf("quiz min_count %d exceeds max_count %d",
			cfg.Quiz.MinCount, cfg.Quiz.MaxCount)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VIDQUIZ_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("VIDQUIZ_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("VIDQUIZ_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("VIDQUIZ_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
