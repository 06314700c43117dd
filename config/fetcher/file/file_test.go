package file

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
name: test-app
version: "1.0"
`)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	f, err := Open(configPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	data, err := io.ReadAll(f)

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, f.Path())
}

func TestOpen_FileNotFound(t *testing.T) {
	t.Parallel()

	f, err := Open("/nonexistent/path/config.yaml")

	require.Error(t, err)
	assert.Nil(t, f)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestOpen_EmptyFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	err := os.WriteFile(configPath, []byte{}, 0o600)
	require.NoError(t, err)

	f, err := Open(configPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	data, err := io.ReadAll(f)

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpen_DirectoryPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	f, err := Open(tmpDir)

	require.Error(t, err)
	assert.Nil(t, f)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestOpen_CleansPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("a: 1\n"), 0o600)
	require.NoError(t, err)

	f, err := Open(tmpDir + "/./sub/../config.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, configPath, f.Path())
}

func TestFile_CloseTwice(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("a: 1\n"), 0o600)
	require.NoError(t, err)

	f, err := Open(configPath)
	require.NoError(t, err)

	require.NoError(t, f.Close())

	err = f.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing file")
}
