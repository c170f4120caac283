package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/service"
)

// ErrorResponse is the shape of every error body this API produces.
type ErrorResponse struct {
	Status int                 `json:"status"`
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func respondError(c echo.Context, status int, title, detail, code string, fields map[string][]string) error {
	return c.JSON(status, ErrorResponse{
		Status: status,
		Title:  title,
		Detail: detail,
		Code:   code,
		Fields: fields,
	})
}

// respondServiceError is the only place orchestrator outcomes turn into
// status codes.
func respondServiceError(c echo.Context, handler string, err error) error {
	l := logging.FromContext(c.Request().Context()).With("handler", handler)

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		l.Warn(handler+"_failed", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", ve.Error(), "validation_error", ve.Fields)
	}

	var ie *service.IdentityError
	if errors.As(err, &ie) {
		l.Warn(handler+"_failed", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Identity error", strings.Join(ie.Reasons, "; "), "identity_error", nil)
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(handler+"_failed", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", err.Error(), "validation_error", nil)
	case errors.Is(err, service.ErrConflict):
		l.Warn(handler+"_failed", "status", 409, "error", err)
		return respondError(c, http.StatusConflict, "Conflict", "resource already exists", "conflict", nil)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(handler+"_failed", "status", 404, "error", err)
		return respondError(c, http.StatusNotFound, "Not found", "resource not found", "not_found", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(handler+"_failed", "status", 401, "error", err)
		return respondError(c, http.StatusUnauthorized, "Unauthorized", "invalid credentials", "invalid_credentials", nil)
	case errors.Is(err, service.ErrUserBlocked):
		l.Warn(handler+"_failed", "status", 403, "error", err)
		return respondError(c, http.StatusForbidden, "Forbidden", "user is blocked", "user_blocked", nil)
	default:
		l.Error(handler+"_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal error", "unexpected error", "internal_error", nil)
	}
}

// HTTPErrorHandler renders echo-raised errors (middleware denials, bad
// routes) in the same structured shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "unexpected error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		}
	}

	code := "internal_error"
	title := "Internal error"
	switch status {
	case http.StatusBadRequest:
		code, title = "validation_error", "Validation failed"
	case http.StatusUnauthorized:
		code, title = "unauthorized", "Unauthorized"
	case http.StatusForbidden:
		code, title = "forbidden", "Forbidden"
	case http.StatusNotFound:
		code, title = "not_found", "Not found"
	case http.StatusConflict:
		code, title = "conflict", "Conflict"
	case http.StatusMethodNotAllowed:
		code, title = "method_not_allowed", "Method not allowed"
	}

	_ = respondError(c, status, title, detail, code, nil)
}
