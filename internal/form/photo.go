package form

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPhotoBytes caps decoded photo uploads at 10MB.
const DefaultMaxPhotoBytes = 10 * 1024 * 1024

var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// PhotoResult is delivered once a photo decode finishes.
type PhotoResult struct {
	DataURI string
	Err     error
}

// DecodePhoto reads an image and returns it as a base64 data URI. The type is
// sniffed from the content, never trusted from the client, and the image
// header must decode.
func DecodePhoto(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPhotoBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, maxBytes)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedPhotoTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
