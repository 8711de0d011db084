package service

import (
	"context"
	"io"
)

// ImageStorage is the object-store collaborator. Images live under
// images/{uid}/{imageKey}.
type ImageStorage interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, uid, imageKey string) (string, error)
	DeleteImage(ctx context.Context, uid, imageKey string) error
	Close() error
}
