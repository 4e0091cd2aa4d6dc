// Package images stores uploaded place images on local disk. Files are served
// back through the /storage static route.
package images

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("image exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// allowedExtensions maps accepted file extensions to the content type we
// expect browsers to send for them.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Store writes uploaded images into a single flat directory.
type Store struct {
	dir     string
	maxSize int64
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Save validates and persists an uploaded image. It returns the public link
// ("/storage/<name>") stored on the place record. Filenames are random so an
// upload can never clobber another submission's image.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against a forged Content-Length.
	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1)); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	info, err := dst.Stat()
	if err == nil && info.Size() > s.maxSize {
		os.Remove(dst.Name())
		return "", ErrTooLarge
	}

	return "/storage/" + name, nil
}

// Dir returns the directory images are stored in, for the static file route.
func (s *Store) Dir() string {
	return s.dir
}
