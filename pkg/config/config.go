// Package config provides configuration management for rtenv. Settings come
// from an optional YAML file and are overridden by RTENV_* environment
// variables; a missing file yields the defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Root holds installed versions, shims and the global version file.
	Root string `yaml:"root,omitempty"`

	// Builder is the build tool executable, looked up on PATH when not absolute.
	Builder string `yaml:"builder,omitempty"`

	// HookPath lists extra directories searched for hook scripts, before the defaults.
	HookPath []string `yaml:"hook_path,omitempty"`

	// BuildRoot keeps build source trees under <build_root>/<version>.
	BuildRoot string `yaml:"build_root,omitempty"`

	// CacheDir is handed to the builder as its download cache.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	ColorOutput  bool   `yaml:"color_output"`
	LogLevel     string `yaml:"log_level"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultBuilder      = "rtenv-build"
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "info"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// systemHookDirs are searched after the user's hook path and <root>/rtenv.d.
var systemHookDirs = []string{
	"/usr/local/etc/rtenv.d",
	"/etc/rtenv.d",
	"/usr/lib/rtenv/hooks",
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	root, err := fsutil.DefaultRoot()
	if err != nil {
		// Fallback to current directory if we can't determine the home directory
		root, _ = filepath.Abs("." + fsutil.AppName)
	}

	return &Config{
		Settings: Settings{
			Root:         root,
			Builder:      DefaultBuilder,
			OutputFormat: DefaultOutputFormat,
			ColorOutput:  true,
			LogLevel:     DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := Config{Settings: Settings{ColorOutput: true}}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(absPath, data, fsutil.FileModeDefault)
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	var b strings.Builder
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return []byte(b.String()), nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	s := c.Settings
	if s.Root != "" && !filepath.IsAbs(s.Root) {
		return errors.Wrapf(errors.ErrRelativeRoot, "%q", s.Root)
	}
	switch s.OutputFormat {
	case "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q (valid: text, json)", s.OutputFormat)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(errors.ErrInvalidLogLevel, "%q (valid: debug, info, warn, error)", s.LogLevel)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}

// HookDirs returns every directory searched for hook scripts, in order.
func (c *Config) HookDirs() []string {
	dirs := make([]string, 0, len(c.Settings.HookPath)+1+len(systemHookDirs))
	dirs = append(dirs, c.Settings.HookPath...)
	dirs = append(dirs, filepath.Join(c.Settings.Root, fsutil.AppName+".d"))
	return append(dirs, systemHookDirs...)
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.Root == "" {
		c.Settings.Root = defaults.Settings.Root
	}
	if c.Settings.Builder == "" {
		c.Settings.Builder = defaults.Settings.Builder
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
