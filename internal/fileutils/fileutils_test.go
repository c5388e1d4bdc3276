package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "a directory is not a file")

	// Stat failures other than not-exist (here: a path below a regular file)
	// must report false, not panic
	assert.False(t, FileExists(filepath.Join(path, "below-a-file")))
	assert.False(t, DirectoryExists(filepath.Join(path, "below-a-file")))
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(path), "a file is not a directory")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Second call on an existing directory is a no-op
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestFindCSVFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales.csv"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rentals.CSV"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0750))

	files, err := FindCSVFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.NotContains(t, f, "notes.txt")
	}
}

func TestFindCSVFilesMissingDirectory(t *testing.T) {
	_, err := FindCSVFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
