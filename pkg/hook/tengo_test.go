package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewTengoAction_ScriptNotFound(t *testing.T) {
	_, err := NewTengoAction(filepath.Join(t.TempDir(), "missing.tengo"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookLoad)
}

func TestNewTengoAction_InvalidScript(t *testing.T) {
	path := writeScript(t, t.TempDir(), "invalid.tengo", "invalid tengo syntax !!!\n")

	_, err := NewTengoAction(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookLoad)
	assert.Contains(t, err.Error(), "failed to compile hook script")
}

func TestTengoAction_RenamesDuringResolve(t *testing.T) {
	path := writeScript(t, t.TempDir(), "rename.tengo", `
if phase == "resolve" {
	version_name = version_name + "-custom"
}
`)
	action, err := NewTengoAction(path)
	require.NoError(t, err)

	env := &Env{Definition: "3.3.0", VersionName: "3.3.0"}
	require.NoError(t, action.Bind(PhaseResolve).Run(context.Background(), env))
	assert.Equal(t, "3.3.0-custom", env.VersionName)

	// outside the resolve phase the assignment has no effect on the install state
	env = &Env{Definition: "3.3.0", VersionName: "3.3.0"}
	require.NoError(t, action.Bind(PhaseBefore).Run(context.Background(), env))
	assert.Equal(t, "3.3.0", env.VersionName)
}

func TestTengoAction_ErrVariableFailsHook(t *testing.T) {
	path := writeScript(t, t.TempDir(), "fail.tengo", `
if phase == "after" && status != 0 {
	err = "build failed for " + version_name
}
`)
	action, err := NewTengoAction(path)
	require.NoError(t, err)

	env := &Env{VersionName: "3.3.0", Prefix: "/tmp/3.3.0", Status: 1}
	err = action.Bind(PhaseAfter).Run(context.Background(), env)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookScript)
	assert.Contains(t, err.Error(), "build failed for 3.3.0")

	env.Status = 0
	assert.NoError(t, action.Bind(PhaseAfter).Run(context.Background(), env))
}

func TestTengoAction_RuntimeError(t *testing.T) {
	path := writeScript(t, t.TempDir(), "runtime.tengo", `
x := [1, 2]
if phase == "before" {
	y := x[0] / 0
}
`)
	action, err := NewTengoAction(path)
	require.NoError(t, err)

	err = action.Bind(PhaseBefore).Run(context.Background(), &Env{VersionName: "3.3.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}
