package images

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	store, err := New(dir, "http://localhost:8080/")
	require.NoError(t, err)

	raw := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	data := base64.StdEncoding.EncodeToString(raw)

	url, err := store.SaveImage("evt-1", "image/png", data)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/images/evt-1.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "evt-1.png"))
	require.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestSaveImageInvalidMimeType(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	testCases := []string{"png", "image/", ""}

	for _, mimeType := range testCases {
		_, err = store.SaveImage("evt-1", mimeType, "aGVsbG8=")
		assert.Error(t, err, "mime type %q must be rejected", mimeType)
	}
}

func TestSaveImageInvalidBase64(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	store, err := New(dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.SaveImage("evt-1", "image/png", "not base64!!!")
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "evt-1.png"))
	assert.True(t, os.IsNotExist(err), "no file must be written on decode failure")
}

func TestRemove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	store, err := New(dir, "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.SaveImage("evt-1", "image/jpeg", base64.StdEncoding.EncodeToString([]byte("jpeg bytes")))
	require.NoError(t, err)

	require.NoError(t, store.Remove("evt-1", "image/jpeg"))

	_, err = os.Stat(filepath.Join(dir, "evt-1.jpeg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFile(t *testing.T) {
	t.Parallel()

	store, err := New(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	assert.Error(t, store.Remove("no-such-id", "image/png"))
}
