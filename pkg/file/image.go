package file

import (
	"fmt"
	"net/http"
)

// imageTypes maps the sniffed content types accepted for email images to
// their file extensions. SVG is excluded; most mail clients block it.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImage sniffs data and returns its content type and extension.
func DetectImage(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrEmptyFile
	}
	contentType = http.DetectContentType(data)
	ext, ok := imageTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotImage, contentType)
	}
	return contentType, ext, nil
}

// ValidateImage checks the size limit and returns the sniffed content type.
// A non-positive maxBytes disables the size check.
func ValidateImage(data []byte, maxBytes int64) (string, error) {
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, len(data), maxBytes)
	}
	contentType, _, err := DetectImage(data)
	return contentType, err
}
