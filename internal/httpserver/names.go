package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type NamesHTTP struct {
	Svc *service.NamesService
}

func (h *NamesHTTP) GetName(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "name_get", err)
	}

	name, err := h.Svc.GetName(ctx, id)
	if err != nil {
		return respondServiceError(c, "name_get", err)
	}

	return c.JSON(http.StatusOK, name)
}

func (h *NamesHTTP) GetNames(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetNames(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "name_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *NamesHTTP) CreateName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "name_create")

	var req transport.CreateNameRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("name_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	name, err := h.Svc.CreateName(ctx, req)
	if err != nil {
		return respondServiceError(c, "name_create", err)
	}

	return c.JSON(http.StatusCreated, name)
}

func (h *NamesHTTP) PatchName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "name_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "name_patch", err)
	}

	var req transport.PatchNameRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("name_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	name, err := h.Svc.PatchName(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "name_patch", err)
	}

	return c.JSON(http.StatusOK, name)
}

func (h *NamesHTTP) DeleteName(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "name_delete", err)
	}

	if err := h.Svc.DeleteName(ctx, id); err != nil {
		return respondServiceError(c, "name_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
