package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "creates new directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "newdir")
			},
		},
		{
			name: "creates nested directories",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "parent", "child", "nested")
			},
		},
		{
			name: "succeeds when directory already exists",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := testCase.setup(t)

			err := EnsureDir(path)

			require.NoError(t, err)
			assert.DirExists(t, path)
			if runtime.GOOS != "windows" {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.True(t, info.IsDir())
			}
		})
	}
}

func TestEnsureFileDir(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "parent", "file.txt")

	require.NoError(t, EnsureFileDir(filePath))
	assert.DirExists(t, filepath.Dir(filePath))
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file), "a regular file is not a directory")
	assert.False(t, DirExists(filepath.Join(dir, "missing")))
}

func TestRemoveTree(t *testing.T) {
	t.Run("removes nested content", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "3.3.0")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "ruby"), []byte("x"), 0o755))

		require.NoError(t, RemoveTree(dir))
		assert.NoDirExists(t, dir)
	})

	t.Run("missing path is not an error", func(t *testing.T) {
		assert.NoError(t, RemoveTree(filepath.Join(t.TempDir(), "missing")))
	})

	t.Run("refuses empty and root paths", func(t *testing.T) {
		assert.Error(t, RemoveTree(""))
		assert.Error(t, RemoveTree(string(filepath.Separator)))
	})
}

func TestListDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "b"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), nil, 0o644))

	dirs, err := ListDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dirs)

	dirs, err = ListDirs(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestPaths(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "rtenv")
	prefix := PrefixFor(root, "3.3.0")

	assert.Equal(t, filepath.Join(root, "versions", "3.3.0"), prefix)
	assert.Equal(t, filepath.Join(prefix, "bin"), BinDir(prefix))
	assert.Equal(t, filepath.Join(root, "shims"), ShimsDir(root))
	assert.Equal(t, filepath.Join(root, "cache"), CacheDir(root))
}
