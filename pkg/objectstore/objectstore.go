// Package objectstore persists and retrieves odometer images.
package objectstore

import (
	"context"
)

// StoredImage is the result of persisting an image.
type StoredImage struct {
	Key          string
	Url          string
	ThumbnailUrl string
}

// Store defines the interface for image storage.
type Store interface {
	// Upload persists image bytes under the given key and returns its URLs.
	Upload(ctx context.Context, key string, data []byte, contentType string) (*StoredImage, error)

	// Download retrieves image bytes by key.
	Download(ctx context.Context, key string) ([]byte, error)
}
