// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"
)

// StoredAsset is the stable (url, public id) pair the media host assigns to
// an uploaded asset.
type StoredAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// MediaStore defines the interface for the external image-hosting service.
//
// The store owns nothing persistent on our side; assets are referenced by
// PublicID from within product records. Calls carry no retry policy, so
// every failure is terminal for the current request.
type MediaStore interface {
	// Upload fetches source (a URL or inline data) and stores it under the
	// given public ID inside the service's media folder.
	Upload(ctx context.Context, source string, publicID string) (*StoredAsset, error)

	// Destroy removes the asset with the given public ID.
	Destroy(ctx context.Context, publicID string) error

	// Owns reports whether url points at an asset inside the folder this
	// service uploads to, i.e. whether it may be reused without re-uploading.
	Owns(url string) bool
}
