// Package media stores uploaded images on an external host.
package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadSize is the per-file upload limit.
const MaxUploadSize = 5 << 20

const (
	FolderVolunteerCalls = "volunteer-calls"
	FolderGalleries      = "organization-galleries"
)

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Asset identifies a stored file. PublicID is the handle used to delete it.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Transform bounds the stored image. Images are scaled down to fit, never up.
type Transform struct {
	MaxWidth  int
	MaxHeight int
}

// DefaultTransform caps stored images at 1200x1200.
var DefaultTransform = &Transform{MaxWidth: 1200, MaxHeight: 1200}

// String renders the transform in Cloudinary's URL syntax.
func (t *Transform) String() string {
	if t == nil {
		return ""
	}
	parts := []string{"c_limit"}
	if t.MaxHeight > 0 {
		parts = append(parts, "h_"+strconv.Itoa(t.MaxHeight))
	}
	if t.MaxWidth > 0 {
		parts = append(parts, "w_"+strconv.Itoa(t.MaxWidth))
	}
	parts = append(parts, "q_auto")
	return strings.Join(parts, ",")
}

//go:generate mockgen -source=./media.go -destination=../mocks/mock_host.go -package=mocks Host

// Host is an external media store.
type Host interface {
	Upload(ctx context.Context, file File, folder string, t *Transform) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// File is an uploaded file held in memory.
type File struct {
	Name        string
	Data        []byte
	ContentType string
}

// Validate enforces the size limit and sniffs the content type from the bytes.
// The client-declared type is ignored.
func (f *File) Validate() error {
	if len(f.Data) == 0 {
		return fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if len(f.Data) > MaxUploadSize {
		return domain.ErrFileTooLarge
	}
	mt := mimetype.Detect(f.Data)
	if !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return domain.ErrUnsupportedFileType
	}
	f.ContentType = mt.String()
	return nil
}

// ReadPart reads one multipart file part without validating it. At most
// MaxUploadSize+1 bytes are read so oversize parts still fail Validate.
func ReadPart(fh *multipart.FileHeader) (File, error) {
	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return File{}, fmt.Errorf("reading upload: %w", err)
	}
	return File{Name: fh.Filename, Data: data}, nil
}

// ReadMultipart reads and validates one multipart file part.
func ReadMultipart(fh *multipart.FileHeader) (File, error) {
	if fh.Size > MaxUploadSize {
		return File{}, domain.ErrFileTooLarge
	}
	f, err := ReadPart(fh)
	if err != nil {
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}
