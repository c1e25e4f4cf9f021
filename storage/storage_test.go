package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	url, err := disk.Save("photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, disk.Delete(url))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	// deleting something already gone is not an error
	assert.NoError(t, disk.Delete(url))
}

func TestDiskSaveAll(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	urls, err := disk.SaveAll([]File{
		{Name: "a.jpg", Reader: strings.NewReader("a")},
		{Name: "b.jpg", Reader: strings.NewReader("b")},
	})
	require.NoError(t, err)
	require.Len(t, urls, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
