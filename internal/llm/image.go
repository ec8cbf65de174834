package llm

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// maxImageBytes caps inline image payloads; providers reject larger uploads.
const maxImageBytes = 20 << 20

// ReadImageBase64 reads an image file and returns its base64 payload plus the
// sniffed media type. The type comes from content, not extension, so renamed
// or extensionless page renders still encode correctly.
func ReadImageBase64(path string) (data, mediaType string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	if len(b) > maxImageBytes {
		return "", "", fmt.Errorf("image %s exceeds %d bytes", path, maxImageBytes)
	}
	mt := mimetype.Detect(b)
	return base64.StdEncoding.EncodeToString(b), mt.String(), nil
}

// ReadImageDataURL reads an image file as an inline data URL for providers
// that take image_url parts.
func ReadImageDataURL(path string) (string, error) {
	data, mt, err := ReadImageBase64(path)
	if err != nil {
		return "", err
	}
	return "data:" + mt + ";base64," + data, nil
}
