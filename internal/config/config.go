// Package config loads service configuration from an optional YAML file,
// .env files, and environment variables. Environment always wins.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultServerPort = 8080

// Config holds the full service configuration.
type Config struct {
	Debug   bool          `env:"APP_DEBUG" yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Inbox   InboxConfig   `yaml:"inbox"`
	Archive ArchiveConfig `yaml:"archive"`
	Static  StaticConfig  `yaml:"static"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string   `env:"SERVER_HOST"      yaml:"host"`
	Port        int      `env:"PORT,SERVER_PORT" yaml:"port"`
	CORSOrigins []string `env:"CORS_ORIGINS"     yaml:"cors_origins"`
}

// InboxConfig holds the pending-item directory configuration.
type InboxConfig struct {
	Dir   string `env:"INBOX_DIR"   yaml:"dir"`
	Watch bool   `env:"INBOX_WATCH" yaml:"watch"`
}

// ArchiveConfig holds the knowledge-base destination configuration.
type ArchiveConfig struct {
	Dir string `env:"ARCHIVE_DIR" yaml:"dir"`
}

// StaticConfig holds the dashboard document-root configuration.
type StaticConfig struct {
	Dir string `env:"STATIC_DIR" yaml:"dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}
	if c.Inbox.Dir == "" {
		return errors.New("inbox.dir is required")
	}
	if c.Archive.Dir == "" {
		return errors.New("archive.dir is required")
	}
	return nil
}

// Load reads configuration from path, fills defaults, and applies env
// overrides. A missing config file is not an error: this service is
// usually configured entirely through the environment.
func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		// The dashboard is same-origin; the wildcard keeps local dev
		// front-ends working.
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Inbox.Dir == "" {
		cfg.Inbox.Dir = filepath.Join(home, "dashboard-inbox")
	}
	if cfg.Archive.Dir == "" {
		cfg.Archive.Dir = filepath.Join(home, "second-brain")
	}
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = "./web"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
