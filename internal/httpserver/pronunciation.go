package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type PronunciationHTTP struct {
	Svc *service.PronunciationService
}

func (h *PronunciationHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "pronunciation_get", err)
	}

	item, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		return respondServiceError(c, "pronunciation_get", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *PronunciationHTTP) GetItems(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetItems(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "pronunciation_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *PronunciationHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "pronunciation_create")

	var req transport.CreatePronunciationItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("pronunciation_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	item, err := h.Svc.CreateItem(ctx, req)
	if err != nil {
		return respondServiceError(c, "pronunciation_create", err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *PronunciationHTTP) PatchItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "pronunciation_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "pronunciation_patch", err)
	}

	var req transport.PatchPronunciationItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("pronunciation_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	item, err := h.Svc.PatchItem(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "pronunciation_patch", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *PronunciationHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "pronunciation_delete", err)
	}

	if err := h.Svc.DeleteItem(ctx, id); err != nil {
		return respondServiceError(c, "pronunciation_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
