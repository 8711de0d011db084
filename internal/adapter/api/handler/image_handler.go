package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"webcars/internal/domain/entity"
	"webcars/internal/usecase"
	"webcars/pkg/errors"
	"webcars/pkg/logger"
	"webcars/pkg/response"
)

type ImageHandler struct {
	uploadUseCase *usecase.UploadUseCase
	maxFileSize   int64
}

func NewImageHandler(uploadUseCase *usecase.UploadUseCase, maxFileSize int64) *ImageHandler {
	return &ImageHandler{
		uploadUseCase: uploadUseCase,
		maxFileSize:   maxFileSize,
	}
}

// UploadImages accepts one or more files in the "images" multipart
// field. Each file uploads independently; the response lists uploaded
// items in completion order, plus any rejected or failed slots.
func (h *ImageHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid multipart form", err))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("At least one file is required", nil))
	}

	uid := c.Get("uid").(string)

	uploads := make([]usecase.ImageUpload, 0, len(files))
	var opened []interface{ Close() error }
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, file := range files {
		if file.Size > h.maxFileSize {
			return response.Error(c, errors.BadRequest(
				fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
		}

		src, err := file.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file %s: %v", file.Filename, err)
			return response.Error(c, errors.Internal("Unable to read file", err))
		}
		opened = append(opened, src)

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Content:     src,
		})
	}

	result, err := h.uploadUseCase.UploadImages(c.Request().Context(), uid, uploads)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type deleteImageRequest struct {
	UID  string `json:"uid" validate:"required"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"`
}

func (h *ImageHandler) DeleteImage(c echo.Context) error {
	var req deleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	item := entity.ImageItem{
		UID:  req.UID,
		Name: req.Name,
		URL:  req.URL,
	}

	if err := h.uploadUseCase.RemoveImage(c.Request().Context(), uid, item); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Image removed",
	})
}
