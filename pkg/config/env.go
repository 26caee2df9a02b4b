package config

import (
	"path/filepath"
	"strings"

	"github.com/glorpus-work/rtenv/pkg/hook"
)

// Environment variables understood by rtenv.
const (
	EnvRoot      = "RTENV_ROOT"
	EnvBuilder   = "RTENV_BUILDER"
	EnvHookPath  = "RTENV_HOOK_PATH"
	EnvBuildRoot = "RTENV_BUILD_ROOT"
	EnvCachePath = "RTENV_BUILD_CACHE_PATH"
	EnvDebug     = "RTENV_DEBUG"
	EnvVersion   = "RTENV_VERSION"
)

// ApplyEnv overrides settings with the environment variables returned by
// getenv. Empty variables are ignored. The result is validated again.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvRoot); v != "" {
		c.Settings.Root = strings.TrimRight(v, string(filepath.Separator))
		if c.Settings.Root == "" {
			c.Settings.Root = string(filepath.Separator)
		}
	}
	if v := getenv(EnvBuilder); v != "" {
		c.Settings.Builder = v
	}
	if v := getenv(EnvHookPath); v != "" {
		c.Settings.HookPath = append(hook.SplitHookPath(v), c.Settings.HookPath...)
	}
	if v := getenv(EnvBuildRoot); v != "" {
		c.Settings.BuildRoot = v
	}
	if v := getenv(EnvCachePath); v != "" {
		c.Settings.CacheDir = v
	}
	if getenv(EnvDebug) != "" {
		c.Settings.LogLevel = "debug"
	}
	return c.Validate()
}
