package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	mw "github.com/kmarchuk/lingua_school/internal/middleware"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type UsersHTTP struct {
	Svc *service.UsersService
}

// selfOrAdmin gates profile access to the owner and admins.
func selfOrAdmin(c echo.Context, id uuid.UUID) bool {
	return mw.IsAdmin(c) || mw.UserID(c) == id.String()
}

func (h *UsersHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListUsers(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "users_list", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}

	rolesByUser, err := h.Svc.RolesForUsers(ctx, ids)
	if err != nil {
		return respondServiceError(c, "users_list", err)
	}

	summaries := make([]transport.UserSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, userSummary(&items[i], rolesByUser[items[i].ID]))
	}

	l.Info("users_list_success")
	return c.JSON(http.StatusOK, map[string]any{
		"data": summaries,
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

func (h *UsersHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Validation failed", "id is not a uuid", "validation_error", nil)
	}

	if !selfOrAdmin(c, id) {
		return respondError(c, http.StatusForbidden, "Forbidden", "not your profile", "forbidden", nil)
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		return respondServiceError(c, "users_get", err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UsersHTTP) PatchUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_patch")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Validation failed", "id is not a uuid", "validation_error", nil)
	}

	if !selfOrAdmin(c, id) {
		return respondError(c, http.StatusForbidden, "Forbidden", "not your profile", "forbidden", nil)
	}

	var req transport.PatchUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("users_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	user, err := h.Svc.PatchUser(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "users_patch", err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UsersHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Validation failed", "id is not a uuid", "validation_error", nil)
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		return respondServiceError(c, "users_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
