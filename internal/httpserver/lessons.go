package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type LessonsHTTP struct {
	Svc *service.LessonsService
}

func (h *LessonsHTTP) GetLesson(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "lesson_get", err)
	}

	lesson, err := h.Svc.GetLesson(ctx, id)
	if err != nil {
		return respondServiceError(c, "lesson_get", err)
	}

	return c.JSON(http.StatusOK, lesson)
}

func (h *LessonsHTTP) GetLessons(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "lesson_list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetLessons(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "lesson_list", err)
	}

	l.Info("lesson_list_success")
	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *LessonsHTTP) CreateLesson(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "lesson_create")

	var req transport.CreateLessonRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("lesson_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	lesson, err := h.Svc.CreateLesson(ctx, req)
	if err != nil {
		return respondServiceError(c, "lesson_create", err)
	}

	l.Info("lesson_create_success", "lesson_id", lesson.ID)
	return c.JSON(http.StatusCreated, lesson)
}

func (h *LessonsHTTP) PatchLesson(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "lesson_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "lesson_patch", err)
	}

	var req transport.PatchLessonRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("lesson_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	lesson, err := h.Svc.PatchLesson(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "lesson_patch", err)
	}

	l.Info("lesson_patch_success", "lesson_id", lesson.ID)
	return c.JSON(http.StatusOK, lesson)
}

func (h *LessonsHTTP) DeleteLesson(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "lesson_delete")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "lesson_delete", err)
	}

	if err := h.Svc.DeleteLesson(ctx, id); err != nil {
		return respondServiceError(c, "lesson_delete", err)
	}

	l.Info("lesson_delete_success", "lesson_id", id)
	return c.NoContent(http.StatusNoContent)
}
