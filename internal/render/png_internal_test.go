package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNG_EncodeFailure(t *testing.T) {
	var (
		dir = t.TempDir()
		dst = filepath.Join(dir, "a.png")
	)

	require.NoError(t, os.WriteFile(dst, []byte("previous"), 0o600))

	// an empty image cannot be encoded
	require.Error(t, writePNG(dst, image.NewRGBA(image.Rect(0, 0, 0, 0))))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be removed")

	require.NoError(t, os.Remove(dst))
	require.Error(t, writePNG(dst, image.NewRGBA(image.Rect(0, 0, 0, 0))))
	assert.NoFileExists(t, dst)
}

func TestWritePNG(t *testing.T) {
	var dst = filepath.Join(t.TempDir(), "a.png")

	require.NoError(t, writePNG(dst, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	stat, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), stat.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
