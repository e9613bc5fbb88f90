package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "res.go")

	wrote, err := Write(path, []byte("package res\n"))
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package res\n", string(data))
}

func TestWriteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res.go")
	content := []byte("package res\n")

	wrote, err := Write(path, content)
	require.NoError(t, err)
	require.True(t, wrote)

	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	// Identical content: zero filesystem writes.
	wrote, err = Write(path, content)
	require.NoError(t, err)
	assert.False(t, wrote)

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime(), "file must not be touched")
}

func TestWriteReplacesChangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res.go")

	_, err := Write(path, []byte("old\n"))
	require.NoError(t, err)

	wrote, err := Write(path, []byte("new\n"))
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "res.go")

	_, err := Write(path, []byte("a\n"))
	require.NoError(t, err)
	_, err = Write(path, []byte("b\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "res.go", entries[0].Name())
}
