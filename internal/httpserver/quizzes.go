package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type QuizzesHTTP struct {
	Svc *service.QuizzesService
}

func (h *QuizzesHTTP) GetQuiz(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_get", err)
	}

	quiz, err := h.Svc.GetQuiz(ctx, id)
	if err != nil {
		return respondServiceError(c, "quiz_get", err)
	}

	return c.JSON(http.StatusOK, quiz)
}

func (h *QuizzesHTTP) GetQuizzes(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetQuizzes(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "quiz_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *QuizzesHTTP) CreateQuiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "quiz_create")

	var req transport.CreateQuizRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quiz_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	quiz, err := h.Svc.CreateQuiz(ctx, req)
	if err != nil {
		return respondServiceError(c, "quiz_create", err)
	}

	l.Info("quiz_create_success", "quiz_id", quiz.ID)
	return c.JSON(http.StatusCreated, quiz)
}

func (h *QuizzesHTTP) PatchQuiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "quiz_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_patch", err)
	}

	var req transport.PatchQuizRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quiz_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	quiz, err := h.Svc.PatchQuiz(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "quiz_patch", err)
	}

	return c.JSON(http.StatusOK, quiz)
}

func (h *QuizzesHTTP) DeleteQuiz(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_delete", err)
	}

	if err := h.Svc.DeleteQuiz(ctx, id); err != nil {
		return respondServiceError(c, "quiz_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *QuizzesHTTP) GetQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_question_get", err)
	}

	q, err := h.Svc.GetQuizQuestion(ctx, id)
	if err != nil {
		return respondServiceError(c, "quiz_question_get", err)
	}

	return c.JSON(http.StatusOK, q)
}

func (h *QuizzesHTTP) GetQuizQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	quizID := uint(util.ParseIntDefault(c.QueryParam("quiz_id"), 0))
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetQuizQuestions(ctx, quizID, offset, limit)
	if err != nil {
		return respondServiceError(c, "quiz_question_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *QuizzesHTTP) CreateQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "quiz_question_create")

	var req transport.CreateQuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quiz_question_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	q, err := h.Svc.CreateQuizQuestion(ctx, req)
	if err != nil {
		return respondServiceError(c, "quiz_question_create", err)
	}

	return c.JSON(http.StatusCreated, q)
}

func (h *QuizzesHTTP) PatchQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "quiz_question_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_question_patch", err)
	}

	var req transport.PatchQuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quiz_question_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	q, err := h.Svc.PatchQuizQuestion(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "quiz_question_patch", err)
	}

	return c.JSON(http.StatusOK, q)
}

func (h *QuizzesHTTP) DeleteQuizQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "quiz_question_delete", err)
	}

	if err := h.Svc.DeleteQuizQuestion(ctx, id); err != nil {
		return respondServiceError(c, "quiz_question_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
