package diskfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjohnson5/Radarr/internal/xlog"
)

func TestService_FolderExists(t *testing.T) {
	service := NewService(xlog.Nop())
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("contents"), 0644))

	assert.True(t, service.FolderExists(tempDir))
	assert.False(t, service.FolderExists(filepath.Join(tempDir, "missing")))
	assert.False(t, service.FolderExists(filePath))
}

func TestService_FolderWritable(t *testing.T) {
	service := NewService(xlog.Nop())
	tempDir := t.TempDir()

	assert.True(t, service.FolderWritable(tempDir))
	assert.False(t, service.FolderWritable(filepath.Join(tempDir, "missing")))

	// the probe file must not be left behind
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_GetDirectories(t *testing.T) {
	service := NewService(xlog.Nop())
	tempDir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "Series1"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "Series2"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "file.txt"), []byte("contents"), 0644))

	got, err := service.GetDirectories(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tempDir, "Series1"),
		filepath.Join(tempDir, "Series2"),
	}, got)

	_, err = service.GetDirectories(filepath.Join(tempDir, "missing"))
	assert.Error(t, err)
}

func TestService_FolderLastModified(t *testing.T) {
	service := NewService(xlog.Nop())
	tempDir := t.TempDir()

	got, err := service.FolderLastModified(tempDir)
	require.NoError(t, err)
	assert.False(t, got.IsZero())

	_, err = service.FolderLastModified(filepath.Join(tempDir, "missing"))
	assert.Error(t, err)
}
