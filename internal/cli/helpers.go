package cli

import (
	"fmt"
	"os"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/config"
	"github.com/gookit/color"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	NoColor    *bool
	Debug      *bool
)

// loadConfig loads the configuration file, applies RTENV_* overrides and
// command line flags, and configures logging and colour output accordingly.
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, fmt.Errorf("failed to determine config file path")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}
	if Debug != nil && *Debug {
		cfg.Settings.LogLevel = "debug"
	}

	initLogging(cfg)
	color.Enable = cfg.Settings.ColorOutput
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// If we can't get the default path, use an empty string which will cause a more descriptive error later
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err.Error()})
		return ""
	}
	return defaultPath
}
