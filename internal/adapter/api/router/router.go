package router

import (
	"github.com/labstack/echo/v4"

	"webcars/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupImageRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
