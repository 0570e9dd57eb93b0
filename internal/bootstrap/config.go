package bootstrap

import (
	"flag"
	"fmt"

	"github.com/jonesrussell/cortexgate/internal/config"
	"github.com/jonesrussell/cortexgate/internal/logger"
)

// LoadConfig loads configuration. Uses -config flag with CONFIG_PATH
// fallback; the file itself is optional.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", config.GetConfigPath("config.yml"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config, version string) (logger.Logger, error) {
	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", "cortexgate"),
		logger.String("version", version),
	), nil
}
