package router

import (
	"github.com/labstack/echo/v4"

	"webcars/internal/adapter/api/handler"
	"webcars/internal/adapter/api/middleware"
)

func SetupImageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	imageHandler := handler.GetImageHandler()

	images := e.Group("/v1/images")
	images.Use(authMiddleware.Authenticate)
	images.POST("", imageHandler.UploadImages)
	images.DELETE("", imageHandler.DeleteImage)
}
