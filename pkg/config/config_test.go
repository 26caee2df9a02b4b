package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Equal(t, "rtenv-build", cfg.Settings.Builder)
	assert.True(t, cfg.Settings.ColorOutput)
	assert.True(t, filepath.IsAbs(cfg.Settings.Root))
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `settings:
  root: /opt/rtenv
  builder: /opt/rtenv-build/bin/rtenv-build
  hook_path:
    - /opt/hooks
  build_root: /var/tmp/builds
  log_level: debug
  color_output: false`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/opt/rtenv", cfg.Settings.Root)
	assert.Equal(t, "/opt/rtenv-build/bin/rtenv-build", cfg.Settings.Builder)
	assert.Equal(t, []string{"/opt/hooks"}, cfg.Settings.HookPath)
	assert.Equal(t, "/var/tmp/builds", cfg.Settings.BuildRoot)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.False(t, cfg.Settings.ColorOutput)
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)

	_, err = LoadConfigFromReader(strings.NewReader("settings: [unclosed"))
	assert.ErrorIs(t, err, errors.ErrConfigParse)

	_, err = LoadConfigFromReader(strings.NewReader("settings:\n  root: relative/dir\n"))
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.Root = "/srv/rtenv"
	cfg.Settings.LogLevel = "debug"
	cfg.Settings.HookPath = []string{"/a", "/b"}

	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveConfig(configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{name: "valid config", mutate: func(*Settings) {}},
		{name: "relative root", mutate: func(s *Settings) { s.Root = "versions" }, wantErr: errors.ErrRelativeRoot},
		{name: "unknown log level", mutate: func(s *Settings) { s.LogLevel = "trace" }, wantErr: errors.ErrInvalidLogLevel},
		{name: "log level is case insensitive", mutate: func(s *Settings) { s.LogLevel = "WARN" }},
		{name: "unknown output format", mutate: func(s *Settings) { s.OutputFormat = "yaml" }, wantErr: errors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.Settings)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	var nilConfig *Config
	assert.ErrorIs(t, nilConfig.Validate(), errors.ErrConfigValidation)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvRoot:      "/env/root/",
		EnvBuilder:   "custom-build",
		EnvHookPath:  "/h1" + string(filepath.ListSeparator) + string(filepath.ListSeparator) + "/h2",
		EnvBuildRoot: "/tmp/keep",
		EnvCachePath: "/tmp/cache",
		EnvDebug:     "1",
	}
	cfg := DefaultConfig()
	cfg.Settings.HookPath = []string{"/from-file"}

	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "/env/root", cfg.Settings.Root)
	assert.Equal(t, "custom-build", cfg.Settings.Builder)
	assert.Equal(t, []string{"/h1", "/h2", "/from-file"}, cfg.Settings.HookPath)
	assert.Equal(t, "/tmp/keep", cfg.Settings.BuildRoot)
	assert.Equal(t, "/tmp/cache", cfg.Settings.CacheDir)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
}

func TestApplyEnv_EmptyLeavesSettings(t *testing.T) {
	cfg := DefaultConfig()
	before := *cfg

	require.NoError(t, cfg.ApplyEnv(func(string) string { return "" }))
	assert.Equal(t, before, *cfg)
}

func TestApplyEnv_RelativeRoot(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvRoot {
			return "relative"
		}
		return ""
	})
	assert.ErrorIs(t, err, errors.ErrRelativeRoot)
}

func TestHookDirs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.Root = "/r"
	cfg.Settings.HookPath = []string{"/custom"}

	dirs := cfg.HookDirs()
	require.GreaterOrEqual(t, len(dirs), 2)
	assert.Equal(t, "/custom", dirs[0])
	assert.Equal(t, filepath.Join("/r", "rtenv.d"), dirs[1])
}

func TestSetAndGetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("log_level", "warn"))
	require.NoError(t, cfg.SetValue("color_output", "false"))
	require.NoError(t, cfg.SetValue("hook_path", "/a"+string(filepath.ListSeparator)+"/b"))

	value, err := cfg.GetValue("log_level")
	require.NoError(t, err)
	assert.Equal(t, "warn", value)

	value, err = cfg.GetValue("hook_path")
	require.NoError(t, err)
	assert.Equal(t, "/a"+string(filepath.ListSeparator)+"/b", value)

	assert.Error(t, cfg.SetValue("color_output", "maybe"))
	assert.ErrorIs(t, cfg.SetValue("log_level", "loud"), errors.ErrInvalidLogLevel)
	assert.ErrorIs(t, cfg.SetValue("nope", "x"), errors.ErrUnknownConfigKey)

	_, err = cfg.GetValue("nope")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)

	m := cfg.ToMap()
	assert.Len(t, m, len(Keys))
	assert.Equal(t, "false", m["color_output"])
}
