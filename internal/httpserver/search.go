package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type SearchHTTP struct {
	Svc *service.SearchService
}

func (h *SearchHTTP) SearchLessons(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search_lessons")

	q := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	res, err := h.Svc.SearchLessons(ctx, q, offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrSearchUnavailable) {
			l.Error("search_lessons_failed", "status", 500, "reason", "search backend unavailable", "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal error", "search is unavailable", "internal_error", nil)
		}
		return respondServiceError(c, "search_lessons", err)
	}

	l.Info("search_lessons_success", "total", res.Total)
	return pagedJSON(c, page, limit, offset, res.Total, res.Items)
}
