package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/goracle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.go")
	writeTestFile(t, path, "package main\n")

	got, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, HashBytes([]byte("package main\n")), got)

	t.Run("content change changes hash", func(t *testing.T) {
		writeTestFile(t, path, "package main // edited\n")

		changed, err := adapter.HashFile(m.Path(path))
		require.NoError(t, err)
		assert.NotEqual(t, got, changed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "missing.go")))
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_ResolvePath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(root, "real.go")
	writeTestFile(t, target, "package real\n")

	link := filepath.Join(root, "link.go")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	t.Run("symlink is resolved", func(t *testing.T) {
		got, err := adapter.ResolvePath(m.Path(link))
		require.NoError(t, err)
		assert.Equal(t, m.Path(target), got)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		t.Chdir(root)

		got, err := adapter.ResolvePath("real.go")
		require.NoError(t, err)
		assert.Equal(t, m.Path(target), got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ResolvePath(m.Path(filepath.Join(root, "missing.go")))
		require.ErrorContains(t, err, "failed to resolve")
	})
}

func TestLocalSourceFSAdapter_SiblingGoFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.go"), "package p\n")
	writeTestFile(t, filepath.Join(root, "a.go"), "package p\n")
	writeTestFile(t, filepath.Join(root, "a_test.go"), "package p\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "# p\n")
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub.go"), 0o750))

	files, err := adapter.SiblingGoFiles(m.Path(filepath.Join(root, "a.go")))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.go")),
		m.Path(filepath.Join(root, "b.go")),
	}, files)
}

func TestLocalSourceFSAdapter_ReadFileAndInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "x.go")
	writeTestFile(t, path, "héllo")

	content, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "héllo", string(content))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, int64(6), info.Size())
	assert.False(t, info.IsDir())
}
