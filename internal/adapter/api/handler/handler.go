package handler

import (
	"webcars/internal/usecase"
)

var (
	authHandler    *AuthHandler
	listingHandler *ListingHandler
	imageHandler   *ImageHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	uploadUseCase *usecase.UploadUseCase,
	maxImageSize int64,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	imageHandler = NewImageHandler(uploadUseCase, maxImageSize)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetImageHandler() *ImageHandler {
	return imageHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
