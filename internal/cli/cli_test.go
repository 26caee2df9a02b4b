package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintError(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	var buf bytes.Buffer
	PrintError(&buf, fmt.Errorf("failed to load config: %w", errors.ErrConfigParse))
	assert.Equal(t, "rtenv: failed to load config: failed to parse config\n", buf.String())

	buf.Reset()
	PrintError(&buf, errors.WithExitCode(nil, 42))
	PrintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestSplitArgs(t *testing.T) {
	split := func(args ...string) ([]string, []string) {
		var positional, extra []string
		cmd := &cobra.Command{
			Use: "install",
			RunE: func(cmd *cobra.Command, args []string) error {
				positional, extra = splitArgs(cmd, args)
				return nil
			},
		}
		cmd.Flags().BoolP("verbose", "v", false, "")
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return positional, extra
	}

	positional, extra := split("-v", "3.3.0", "--", "--with-jemalloc", "-v")
	assert.Equal(t, []string{"3.3.0"}, positional)
	assert.Equal(t, []string{"--with-jemalloc", "-v"}, extra)

	positional, extra = split("3.3.0")
	assert.Equal(t, []string{"3.3.0"}, positional)
	assert.Empty(t, extra)

	positional, extra = split("--", "-j4")
	assert.Empty(t, positional)
	assert.Equal(t, []string{"-j4"}, extra)
}

func TestInstallCmd_UsageErrors(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	ConfigPath = &configPath
	defer func() { ConfigPath = nil }()

	tests := []struct {
		name string
		args []string
	}{
		{name: "two definitions", args: []string{"3.3.0", "3.2.2"}},
		{name: "conflicting listings", args: []string{"--list", "--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewInstallCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			require.Error(t, err)
			assert.Equal(t, 1, errors.ExitCode(err))
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	ConfigPath = &configPath
	defer func() { ConfigPath = nil }()
	t.Setenv("RTENV_ROOT", "")
	t.Setenv("RTENV_BUILDER", "")

	set := NewConfigCmd()
	set.SetArgs([]string{"set", "builder", "/opt/bin/rtenv-build"})
	require.NoError(t, set.Execute())
	assert.FileExists(t, configPath)

	var out bytes.Buffer
	get := NewConfigCmd()
	get.SetOut(&out)
	get.SetArgs([]string{"get", "builder"})
	require.NoError(t, get.Execute())
	assert.Equal(t, "/opt/bin/rtenv-build\n", out.String())
}
