package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
	"github.com/kmarchuk/lingua_school/internal/util"
)

type VocabularyHTTP struct {
	Svc *service.VocabularyService
}

func (h *VocabularyHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_get", err)
	}

	cat, err := h.Svc.GetCategory(ctx, id)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_get", err)
	}

	return c.JSON(http.StatusOK, cat)
}

func (h *VocabularyHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetCategories(ctx, offset, limit)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *VocabularyHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vocabulary_category_create")

	var req transport.CreateVocabularyCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("vocabulary_category_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	cat, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_create", err)
	}

	return c.JSON(http.StatusCreated, cat)
}

func (h *VocabularyHTTP) PatchCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vocabulary_category_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_patch", err)
	}

	var req transport.PatchVocabularyCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("vocabulary_category_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	cat, err := h.Svc.PatchCategory(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_patch", err)
	}

	return c.JSON(http.StatusOK, cat)
}

func (h *VocabularyHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_category_delete", err)
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return respondServiceError(c, "vocabulary_category_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *VocabularyHTTP) GetWord(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_get", err)
	}

	word, err := h.Svc.GetWord(ctx, id)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_get", err)
	}

	return c.JSON(http.StatusOK, word)
}

func (h *VocabularyHTTP) GetWords(c echo.Context) error {
	ctx := c.Request().Context()

	categoryID := uint(util.ParseIntDefault(c.QueryParam("category_id"), 0))
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetWords(ctx, categoryID, offset, limit)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_list", err)
	}

	return pagedJSON(c, page, limit, offset, total, items)
}

func (h *VocabularyHTTP) CreateWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vocabulary_word_create")

	var req transport.CreateVocabularyWordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("vocabulary_word_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	word, err := h.Svc.CreateWord(ctx, req)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_create", err)
	}

	return c.JSON(http.StatusCreated, word)
}

func (h *VocabularyHTTP) PatchWord(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vocabulary_word_patch")

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_patch", err)
	}

	var req transport.PatchVocabularyWordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("vocabulary_word_patch_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	word, err := h.Svc.PatchWord(ctx, req, id)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_patch", err)
	}

	return c.JSON(http.StatusOK, word)
}

func (h *VocabularyHTTP) DeleteWord(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, "vocabulary_word_delete", err)
	}

	if err := h.Svc.DeleteWord(ctx, id); err != nil {
		return respondServiceError(c, "vocabulary_word_delete", err)
	}

	return c.NoContent(http.StatusNoContent)
}
