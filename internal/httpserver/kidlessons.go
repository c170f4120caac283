package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type KidLessonsHTTP struct {
	Svc *service.KidLessonsService
}

func (h *KidLessonsHTTP) GetKidLesson(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_lesson_get", err)
	}

	lesson, err := h.Svc.GetKidLesson(ctx, id)
	if err != nil {
		return respondServiceError(c, "kid_lesson_get", err)
	}

	return c.JSON(http.StatusOK, lesson)
}

func (h *KidLessonsHTTP) GetKidLessons(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetKidLessons(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "kid_lesson_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *KidLessonsHTTP) CreateKidLesson(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "kid_lesson_create")

	var req transport.CreateKidLessonRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("kid_lesson_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	lesson, err := h.Svc.CreateKidLesson(ctx, req)
	if err != nil {
		return respondServiceError(c, "kid_lesson_create", err)
	}

	return c.JSON(http.StatusCreated, lesson)
}

func (h *KidLessonsHTTP) PatchKidLesson(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "kid_lesson_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_lesson_patch", err)
	}

	var req transport.PatchKidLessonRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("kid_lesson_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	lesson, err := h.Svc.PatchKidLesson(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "kid_lesson_patch", err)
	}

	return c.JSON(http.StatusOK, lesson)
}

func (h *KidLessonsHTTP) DeleteKidLesson(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_lesson_delete", err)
	}

	if err := h.Svc.DeleteKidLesson(ctx, id); err != nil {
		return respondServiceError(c, "kid_lesson_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *KidLessonsHTTP) GetKidQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_get", err)
	}

	q, err := h.Svc.GetKidQuizQuestion(ctx, id)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_get", err)
	}

	return c.JSON(http.StatusOK, q)
}

func (h *KidLessonsHTTP) GetKidQuizQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	kidLessonID := uint(util.ParseIntDefault(c.QueryParam("kid_lesson_id"), 0))
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetKidQuizQuestions(ctx, kidLessonID, offset, limit)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *KidLessonsHTTP) CreateKidQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "kid_quiz_question_create")

	var req transport.CreateKidQuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("kid_quiz_question_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	q, err := h.Svc.CreateKidQuizQuestion(ctx, req)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_create", err)
	}

	return c.JSON(http.StatusCreated, q)
}

func (h *KidLessonsHTTP) PatchKidQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "kid_quiz_question_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_patch", err)
	}

	var req transport.PatchKidQuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("kid_quiz_question_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	q, err := h.Svc.PatchKidQuizQuestion(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_patch", err)
	}

	return c.JSON(http.StatusOK, q)
}

func (h *KidLessonsHTTP) DeleteKidQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "kid_quiz_question_delete", err)
	}

	if err := h.Svc.DeleteKidQuizQuestion(ctx, id); err != nil {
		return respondServiceError(c, "kid_quiz_question_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
