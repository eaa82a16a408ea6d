package assets

import (
	"context"
	"fmt"

	"lingolist/internal/domain"
)

// UploadResult identifies a stored blob.
type UploadResult struct {
	URL     string
	AssetID string
}

// Store is the narrow blob-store boundary used for list cover images.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string) error
}

// Disabled rejects every upload, for deployments without a configured
// bucket.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, data []byte, contentType string) (*UploadResult, error) {
	return nil, fmt.Errorf("asset store is not configured: %w", domain.ErrExternalFailure)
}

func (Disabled) Delete(ctx context.Context, assetID string) error {
	return nil
}
