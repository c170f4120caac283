package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func userSummary(user *models.User, roles []string) transport.UserSummary {
	return transport.UserSummary{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		IsBlocked: user.Blocked(),
		Roles:     roles,
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	user, roles, err := h.Svc.Register(ctx, service.RegisterInput{
		UserName:        req.UserName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Country:         req.Country,
	})
	if err != nil {
		return respondServiceError(c, "auth_register", err)
	}

	return c.JSON(http.StatusOK, userSummary(user, roles))
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	res, err := h.Svc.Login(ctx, req.EmailOrUserName, req.Password)
	if err != nil {
		return respondServiceError(c, "auth_login", err)
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		ID:        res.User.ID.String(),
		Email:     res.User.Email,
		Username:  res.User.Username,
		IsBlocked: res.User.Blocked(),
		Roles:     res.Roles,
		Token:     res.Token,
	})
}

func (h *AuthHTTP) parseUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, &service.ValidationError{Fields: map[string][]string{
			"userId": {"userId must be a uuid"},
		}}
	}
	return id, nil
}

func (h *AuthHTTP) Block(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := h.parseUserID(c)
	if err != nil {
		return respondServiceError(c, "auth_block", err)
	}

	user, err := h.Svc.BlockUser(ctx, id)
	if err != nil {
		return respondServiceError(c, "auth_block", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        user.ID.String(),
		"isBlocked": user.Blocked(),
	})
}

func (h *AuthHTTP) Unblock(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := h.parseUserID(c)
	if err != nil {
		return respondServiceError(c, "auth_unblock", err)
	}

	user, err := h.Svc.UnblockUser(ctx, id)
	if err != nil {
		return respondServiceError(c, "auth_unblock", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        user.ID.String(),
		"isBlocked": user.Blocked(),
	})
}

func (h *AuthHTTP) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_forgot_password")

	var req transport.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("forgot_password_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	token, err := h.Svc.GeneratePasswordResetToken(ctx, req.Email)
	if err != nil {
		return respondServiceError(c, "auth_forgot_password", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
	})
}

func (h *AuthHTTP) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_reset_password")

	var req transport.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("reset_password_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Validation failed", "invalid body", "validation_error", nil)
	}

	if err := h.Svc.ResetPassword(ctx, req.Email, req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		return respondServiceError(c, "auth_reset_password", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "password reset",
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	h.Svc.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"message": "logged out",
	})
}
