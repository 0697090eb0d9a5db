package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegMagic = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46}

func TestReadSelected_KnownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pier.jpg")
	require.NoError(t, os.WriteFile(path, jpegMagic, 0o600))

	f, err := ReadSelected(path)
	require.NoError(t, err)

	assert.Equal(t, "pier.jpg", f.Name)
	assert.Equal(t, int64(len(jpegMagic)), f.Size)
	assert.Equal(t, "image/jpeg", f.ContentType)
	assert.Equal(t, jpegMagic, f.Data)
}

func TestReadSelected_SniffsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.raw8")
	require.NoError(t, os.WriteFile(path, jpegMagic, 0o600))

	f, err := ReadSelected(path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", f.ContentType)
}

func TestReadSelected_MissingFile(t *testing.T) {
	_, err := ReadSelected(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSelectedAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(a, jpegMagic, 0o600))
	require.NoError(t, os.WriteFile(b, jpegMagic, 0o600))

	files, err := ReadSelectedAll([]string{a, b})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.jpg", files[0].Name)

	_, err = ReadSelectedAll([]string{a, filepath.Join(dir, "missing.jpg")})
	require.Error(t, err)
}
