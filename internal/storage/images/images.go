package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists uploaded images on local disk and composes public URLs
// for them from the configured base URL.
type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveImage decodes base64 data and writes it to disk as <id>.<ext>, where
// ext is the subtype of the supplied MIME type. Returns the public URL of
// the stored file.
func (s *Store) SaveImage(id, mimeType, data string) (string, error) {
	ext, err := extension(mimeType)
	if err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	fileName := id + "." + ext
	if err = os.WriteFile(filepath.Join(s.dir, fileName), decoded, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return s.baseURL + "/images/" + fileName, nil
}

// Remove deletes a previously stored image. Used to compensate a failed
// event insert so no orphaned file stays behind.
func (s *Store) Remove(id, mimeType string) error {
	ext, err := extension(mimeType)
	if err != nil {
		return err
	}

	if err = os.Remove(filepath.Join(s.dir, id+"."+ext)); err != nil {
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	return nil
}

func extension(mimeType string) (string, error) {
	_, ext, found := strings.Cut(mimeType, "/")
	if !found || ext == "" {
		return "", fmt.Errorf("invalid mime type: %q", mimeType)
	}

	return ext, nil
}
