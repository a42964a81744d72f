package service

import (
	"context"
	"mime/multipart"
)

// ImageStore is the object-storage boundary for recipe images. Upload
// returns a public reference; Delete failures are best-effort for callers
// and must never fail a request.
type ImageStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}
