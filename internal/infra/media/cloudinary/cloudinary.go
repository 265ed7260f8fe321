// Package cloudinary implements the media store on the Cloudinary upload API.
package cloudinary

import (
	"context"
	"strings"

	"dashboard/config"
	"dashboard/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

const defaultFolder = "product_images"

type mediaStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewMediaStore creates a new Cloudinary-backed media store instance
func NewMediaStore(cfg *config.Config) (service.MediaStore, error) {
	client, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary client")
	}

	folder := cfg.Cloudinary.Folder
	if folder == "" {
		folder = defaultFolder
	}

	return &mediaStore{
		client: client,
		folder: folder,
	}, nil
}

// Upload stores the source (URL or inline data) under <folder>/<publicID>.
// The asset keeps its derived filename but never overwrites an existing one.
func (s *mediaStore) Upload(ctx context.Context, source string, publicID string) (*service.StoredAsset, error) {
	result, err := s.client.Upload.Upload(ctx, source, uploader.UploadParams{
		PublicID:       s.folder + "/" + publicID,
		ResourceType:   "auto",
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload asset")
	}
	// The SDK reports API-level rejections in the result body with a nil error.
	if result.Error.Message != "" {
		return nil, errors.Errorf("failed to upload asset: %s", result.Error.Message)
	}

	return &service.StoredAsset{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// Destroy removes the asset with the given public ID from the media host.
func (s *mediaStore) Destroy(ctx context.Context, publicID string) error {
	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errors.Wrap(err, "failed to destroy asset")
	}
	if result.Result != "ok" && result.Result != "not found" {
		return errors.Errorf("failed to destroy asset: %s", result.Result)
	}

	return nil
}

// Owns recognizes URLs that point into this service's upload folder by the
// fixed naming convention of Cloudinary delivery URLs.
func (s *mediaStore) Owns(url string) bool {
	return strings.Contains(url, "cloudinary") && strings.Contains(url, s.folder)
}
