package versionfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocal(t *testing.T) {
	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	t.Run("walks up to the nearest file", func(t *testing.T) {
		writeFile(t, filepath.Join(project, LocalFileName), "3.3.0\n")
		name, err := (&Lookup{Dir: nested}).Local()
		require.NoError(t, err)
		assert.Equal(t, "3.3.0", name)
	})

	t.Run("nearer file wins", func(t *testing.T) {
		writeFile(t, filepath.Join(project, "a", LocalFileName), "  jruby-9.4.5.0 extra words\n")
		name, err := (&Lookup{Dir: nested}).Local()
		require.NoError(t, err)
		assert.Equal(t, "jruby-9.4.5.0", name)
	})

	t.Run("empty nearest file", func(t *testing.T) {
		writeFile(t, filepath.Join(nested, LocalFileName), "\n\n")
		_, err := (&Lookup{Dir: nested}).Local()
		assert.ErrorIs(t, err, errors.ErrNoVersion)
	})
}

func TestLocal_NoFile(t *testing.T) {
	_, err := (&Lookup{Dir: t.TempDir()}).Local()
	// a stray version file above the temp dir would make this meaningless
	if err == nil {
		t.Skip("found a version file above the temporary directory")
	}
	assert.ErrorIs(t, err, errors.ErrNoVersion)
}

func TestGlobal(t *testing.T) {
	root := t.TempDir()
	lookup := New(root)

	name, err := lookup.Global()
	require.NoError(t, err)
	assert.Equal(t, System, name)

	writeFile(t, filepath.Join(root, GlobalFileName), "")
	name, err = lookup.Global()
	require.NoError(t, err)
	assert.Equal(t, System, name)

	writeFile(t, filepath.Join(root, GlobalFileName), "3.2.2\n")
	name, err = lookup.Global()
	require.NoError(t, err)
	assert.Equal(t, "3.2.2", name)
}

func TestGlobal_Unreadable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, GlobalFileName), 0o755))

	_, err := New(root).Global()
	assert.Error(t, err)
}

func TestSelected(t *testing.T) {
	root := t.TempDir()
	project := t.TempDir()
	lookup := &Lookup{Root: root, Dir: project}
	writeFile(t, filepath.Join(root, GlobalFileName), "3.2.2\n")

	name, err := lookup.Selected("")
	if err == nil && name != "3.2.2" {
		t.Skip("found a version file above the temporary directory")
	}
	require.NoError(t, err)
	assert.Equal(t, "3.2.2", name)

	writeFile(t, filepath.Join(project, LocalFileName), "3.3.0\n")
	name, err = lookup.Selected("")
	require.NoError(t, err)
	assert.Equal(t, "3.3.0", name)

	name, err = lookup.Selected("jruby-9.4.5.0")
	require.NoError(t, err)
	assert.Equal(t, "jruby-9.4.5.0", name)
}
