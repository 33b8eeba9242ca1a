package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the upload size limit.
const MaxImageBytes = 1_000_000

var (
	// ErrImageTooLarge and ErrInvalidImageType distinguish the two rejection
	// reasons for callers that redirect with different messages.
	ErrImageTooLarge    = fmt.Errorf("image too large: maximum size is %d bytes", MaxImageBytes)
	ErrInvalidImageType = fmt.Errorf("images only (jpeg, jpg, png, gif)")
)

// imageExtensions and imageMimeTypes form the allow-set for bat images.
// Extension and content type are checked independently; both must pass, so a
// renamed file with mismatched content is rejected either way.
var (
	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
	imageMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	}
)

// ValidateImage validates an uploaded bat image against the size limit and
// the extension/content-type allow-set.
func ValidateImage(header *multipart.FileHeader) error {
	if header.Size > MaxImageBytes {
		return ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return ErrInvalidImageType
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Sniff the content type from the first 512 bytes rather than trusting
	// the declared Content-Type header.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read upload: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if !imageMimeTypes[detected] {
		return ErrInvalidImageType
	}

	return nil
}
