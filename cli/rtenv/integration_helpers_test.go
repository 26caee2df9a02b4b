//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeBuilderScript knows three definitions. 3.3.0 installs, 9.9.9 fails
// halfway through and anything else is unknown (status 2).
const fakeBuilderScript = `#!/bin/sh
case "$1" in
  --definitions) printf '3.2.2\n3.3.0\n3.3.0-preview1\n9.9.9\njruby-9.4.5.0\n'; exit 0 ;;
  --version) echo "rtenv-build 20250101"; exit 0 ;;
esac
while [ "$#" -gt 0 ]; do
  case "$1" in
    -k|-v|-p) shift ;;
    *) break ;;
  esac
done
definition="$1"
prefix="$2"
echo "$definition $prefix ${RTENV_VERSION:-unset}" >> "$FAKE_BUILDER_LOG"
case "$definition" in
  3.3.0|3.2.2)
    mkdir -p "$prefix/bin"
    printf '#!/bin/sh\necho "ruby %s $*"\n' "$definition" > "$prefix/bin/ruby"
    chmod +x "$prefix/bin/ruby"
    exit 0 ;;
  9.9.9)
    mkdir -p "$prefix/lib"
    exit 1 ;;
  *)
    echo "rtenv-build: definition not found: $definition" >&2
    exit 2 ;;
esac
`

type testEnv struct {
	root       string
	configPath string
	logPath    string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the fake builder needs a POSIX shell")
	}

	tempDir := t.TempDir()
	env := &testEnv{
		root:       filepath.Join(tempDir, "root"),
		configPath: filepath.Join(tempDir, "config.yaml"),
		logPath:    filepath.Join(tempDir, "builder.log"),
	}
	builderPath := filepath.Join(tempDir, "bin", "rtenv-build")
	require.NoError(t, os.MkdirAll(filepath.Dir(builderPath), 0o755))
	require.NoError(t, os.WriteFile(builderPath, []byte(fakeBuilderScript), 0o755))
	require.NoError(t, os.MkdirAll(env.root, 0o755))

	t.Setenv("RTENV_ROOT", env.root)
	t.Setenv("RTENV_BUILDER", builderPath)
	t.Setenv("RTENV_HOOK_PATH", "")
	t.Setenv("RTENV_VERSION", "")
	t.Setenv("RTENV_BUILD_ROOT", "")
	t.Setenv("RTENV_BUILD_CACHE_PATH", "")
	t.Setenv("FAKE_BUILDER_LOG", env.logPath)
	return env
}

// run executes rtenv with args and returns stdout, stderr and the exit code.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), errors.ExitCode(err)
}

func (e *testEnv) builderCalls(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.logPath)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
