package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/service"
)

// parseID rejects a path id that is not a positive integer. It does not write
// the response; callers hand the error to respondServiceError so exactly one
// body is produced.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, &service.ValidationError{Fields: map[string][]string{
			"id": {"id must be a positive integer"},
		}}
	}
	return uint(id), nil
}

func pagedJSON(c echo.Context, page, limit, offset int, total int64, data any) error {
	return c.JSON(http.StatusOK, map[string]any{
		"data": data,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}
