package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryHost stores images on Cloudinary.
type CloudinaryHost struct {
	api cloudinaryAPI
}

// NewCloudinaryHost builds a host from a CLOUDINARY_URL or, when that is empty,
// from discrete credentials.
func NewCloudinaryHost(url, cloudName, apiKey, apiSecret string) (*CloudinaryHost, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case url != "":
		cld, err = cloudinary.NewFromURL(url)
	case cloudName != "" && apiKey != "" && apiSecret != "":
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	default:
		return nil, errors.New("cloudinary credentials are not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("configuring cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryHost{api: &cld.Upload}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, file File, folder string, t *Transform) (*Asset, error) {
	res, err := h.api.Upload(ctx, bytes.NewReader(file.Data), uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		Transformation: t.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cloudinary upload: %v", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: cloudinary upload: %s", domain.ErrUpstream, res.Error.Message)
	}
	if res.SecureURL == "" || res.PublicID == "" {
		return nil, fmt.Errorf("%w: cloudinary returned no asset", domain.ErrUpstream)
	}

	return &Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Delete removes the asset. An asset that is already gone is not an error.
func (h *CloudinaryHost) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	res, err := h.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("%w: cloudinary destroy: %v", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%w: cloudinary destroy: %s", domain.ErrUpstream, res.Error.Message)
	}
	switch res.Result {
	case "ok":
	case "not found":
		slog.WarnContext(ctx, "cloudinary asset already deleted", "publicID", publicID)
	default:
		return fmt.Errorf("%w: cloudinary destroy returned %q", domain.ErrUpstream, res.Result)
	}
	return nil
}
