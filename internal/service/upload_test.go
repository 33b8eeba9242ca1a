package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willowworks/batrack/internal/validation"
)

func TestUpload_AcceptStoresFile(t *testing.T) {
	local := setupStorage(t)
	uploads := NewUploadService(local)

	path, err := uploads.Accept("image", uploadHeader(t, "Blade.PNG", pngBytes(1024)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "image-"))
	assert.True(t, strings.HasSuffix(path, ".png"), "extension is lowercased: %s", path)
	assert.True(t, uploads.Exists(path))
	assert.Equal(t, "/uploads/"+path, uploads.URL(path))
}

func TestUpload_AcceptRejectsOversize(t *testing.T) {
	uploads := NewUploadService(setupStorage(t))

	_, err := uploads.Accept("image", uploadHeader(t, "big.png", pngBytes(2_000_000)))
	assert.ErrorIs(t, err, validation.ErrImageTooLarge)
}

func TestUpload_AcceptRejectsBadType(t *testing.T) {
	uploads := NewUploadService(setupStorage(t))

	_, err := uploads.Accept("image", uploadHeader(t, "notes.txt", []byte("text")))
	assert.ErrorIs(t, err, validation.ErrInvalidImageType)
}

func TestUpload_RemoveIsIdempotent(t *testing.T) {
	uploads := NewUploadService(setupStorage(t))

	path, err := uploads.Accept("image", uploadHeader(t, "bat.png", pngBytes(256)))
	require.NoError(t, err)

	require.NoError(t, uploads.Remove(path))
	assert.False(t, uploads.Exists(path))

	// Already gone, still fine
	require.NoError(t, uploads.Remove(path))
	require.NoError(t, uploads.Remove(""))
}

func TestUpload_UniqueNames(t *testing.T) {
	uploads := NewUploadService(setupStorage(t))

	first, err := uploads.Accept("image", uploadHeader(t, "bat.png", pngBytes(256)))
	require.NoError(t, err)
	second, err := uploads.Accept("image", uploadHeader(t, "bat.png", pngBytes(256)))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
