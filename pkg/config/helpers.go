package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glorpus-work/rtenv/pkg/errors"
)

// Keys lists the settable configuration keys in display order.
var Keys = []string{"root", "builder", "hook_path", "build_root", "cache_dir", "output_format", "color_output", "log_level"}

// SetValue sets a configuration value by key. hook_path takes a
// list-separator-joined value, color_output a boolean.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "root":
		c.Settings.Root = value
	case "builder":
		c.Settings.Builder = value
	case "hook_path":
		c.Settings.HookPath = nil
		for _, dir := range filepath.SplitList(value) {
			if dir != "" {
				c.Settings.HookPath = append(c.Settings.HookPath, dir)
			}
		}
	case "build_root":
		c.Settings.BuildRoot = value
	case "cache_dir":
		c.Settings.CacheDir = value
	case "output_format":
		c.Settings.OutputFormat = value
	case "color_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.ColorOutput = boolVal
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
	return c.Validate()
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "root":
		return c.Settings.Root, nil
	case "builder":
		return c.Settings.Builder, nil
	case "hook_path":
		return strings.Join(c.Settings.HookPath, string(filepath.ListSeparator)), nil
	case "build_root":
		return c.Settings.BuildRoot, nil
	case "cache_dir":
		return c.Settings.CacheDir, nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "color_output":
		return strconv.FormatBool(c.Settings.ColorOutput), nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
}

// ToMap returns every setting keyed by its configuration key.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}
