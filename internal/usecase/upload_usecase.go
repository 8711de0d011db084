package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"webcars/internal/domain/entity"
	"webcars/internal/domain/service"
	"webcars/pkg/errors"
	"webcars/pkg/logger"
)

type UploadUseCase struct {
	storage service.ImageStorage
}

func NewUploadUseCase(storage service.ImageStorage) *UploadUseCase {
	return &UploadUseCase{
		storage: storage,
	}
}

// ImageUpload is one file selected for upload.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadFailure reports one slot that did not reach the uploaded state.
type UploadFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// UploadResult holds the uploaded items in completion order plus the
// failed slots.
type UploadResult struct {
	Items  []entity.ImageItem `json:"images"`
	Failed []UploadFailure    `json:"failed,omitempty"`
}

func allowedImageType(contentType string) bool {
	return contentType == "image/png" || contentType == "image/jpeg"
}

// UploadImages pushes each accepted file to the object store under
// images/{uid}/{key}. Files with a type other than PNG or JPEG are
// rejected before any network call. Accepted files upload concurrently
// and independently; items appear in completion order, and one slot
// failing never aborts its siblings.
func (uc *UploadUseCase) UploadImages(ctx context.Context, uid string, files []ImageUpload) (*UploadResult, error) {
	if uid == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}

	result := &UploadResult{Items: []entity.ImageItem{}}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	// Rejections are collected locally and merged after the workers
	// finish; upload goroutines append to result under mu, so the main
	// loop must not touch result.Failed while they run.
	var rejected []UploadFailure

	for _, file := range files {
		if !allowedImageType(file.ContentType) {
			rejected = append(rejected, UploadFailure{
				Filename: file.Filename,
				Reason:   "Only PNG and JPEG images are supported",
			})
			continue
		}

		wg.Add(1)
		go func(file ImageUpload) {
			defer wg.Done()

			imageKey := uuid.New().String()
			url, err := uc.storage.UploadImage(ctx, file.Content, file.ContentType, uid, imageKey)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("Image upload failed for %s: %v", file.Filename, err)
				result.Failed = append(result.Failed, UploadFailure{
					Filename: file.Filename,
					Reason:   "Upload failed",
				})
				return
			}
			result.Items = append(result.Items, entity.ImageItem{
				UID:  uid,
				Name: imageKey,
				URL:  url,
			})
		}(file)
	}

	wg.Wait()
	result.Failed = append(result.Failed, rejected...)
	return result, nil
}

// RemoveImage deletes the remote object backing an uploaded item. Only
// the uploader may remove it. On failure the item is considered still
// present; the remote object may or may not exist.
func (uc *UploadUseCase) RemoveImage(ctx context.Context, uid string, item entity.ImageItem) error {
	if item.UID != uid {
		return errors.Forbidden("You don't have permission to delete this image", nil)
	}

	if err := uc.storage.DeleteImage(ctx, item.UID, item.Name); err != nil {
		logger.Error("Failed to delete image %s/%s: %v", item.UID, item.Name, err)
		return errors.Internal("Failed to delete image", err)
	}

	return nil
}
