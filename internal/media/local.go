package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// LocalHost writes images below a directory served at baseURL/uploads/. It is
// meant for development without Cloudinary credentials.
type LocalHost struct {
	dir     string
	baseURL string
}

func NewLocalHost(dir, baseURL string) (*LocalHost, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalHost{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the directory uploads are written to.
func (h *LocalHost) Dir() string {
	return h.dir
}

// Upload decodes the image, scales it down to fit t and stores it as JPEG or PNG.
// WebP input is re-encoded as JPEG.
func (h *LocalHost) Upload(ctx context.Context, file File, folder string, t *Transform) (*Asset, error) {
	img, format, err := image.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if t != nil {
		b := img.Bounds()
		if (t.MaxWidth > 0 && b.Dx() > t.MaxWidth) || (t.MaxHeight > 0 && b.Dy() > t.MaxHeight) {
			img = imaging.Fit(img, bound(t.MaxWidth, b.Dx()), bound(t.MaxHeight, b.Dy()), imaging.Lanczos)
		}
	}

	ext, enc := ".jpg", imaging.JPEG
	if format == "png" {
		ext, enc = ".png", imaging.PNG
	}

	publicID := path.Join(folder, uuid.NewString())
	dest := filepath.Join(h.dir, filepath.FromSlash(publicID)+ext)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, enc, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing image: %w", err)
	}

	return &Asset{
		URL:      h.baseURL + "/uploads/" + publicID + ext,
		PublicID: publicID + ext,
	}, nil
}

func (h *LocalHost) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(publicID))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid public id %q", publicID)
	}
	if err := os.Remove(filepath.Join(h.dir, clean)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing image: %w", err)
	}
	return nil
}

func bound(limit, actual int) int {
	if limit <= 0 {
		return actual
	}
	return limit
}
