package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetLimitParam extracts a bounded "limit" query parameter.
func GetLimitParam(c echo.Context, defaultLimit, maxLimit int) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit
}
