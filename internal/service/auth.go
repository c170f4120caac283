package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/events"
	"github.com/kmarchuk/lingua_school/internal/hash"
	"github.com/kmarchuk/lingua_school/internal/logging"
	"github.com/kmarchuk/lingua_school/internal/mailer"
	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/tokens"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"

	minPasswordLen = 8
)

// blockedSentinel marks an indefinite block. Any locked_until in the past
// means the account is not blocked.
var blockedSentinel = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

// UserStore is the credential-store capability set the orchestrator needs.
// *repo.GormRepo satisfies it; tests may substitute any other implementation.
type UserStore interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	SetLockedUntil(ctx context.Context, id uuid.UUID, until *time.Time) error
	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	CreateResetToken(ctx context.Context, userID uuid.UUID) (string, error)
	ConsumeResetToken(ctx context.Context, userID uuid.UUID, token, newHash string) error
}

// AuthService orchestrates registration, login, lockout and password reset.
//
// Known tradeoff carried over from the original design: issuing a new reset
// token does not invalidate outstanding ones, and bearer tokens stay valid
// until natural expiry even after block or logout.
type AuthService struct {
	Store    UserStore
	Tokens   *tokens.Issuer
	Producer *events.Producer
	Mailer   mailer.Mailer
}

type LoginResult struct {
	User  *models.User
	Roles []string
	Token string
	Exp   time.Time
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, events.UserTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func passwordReasons(password string) []string {
	var reasons []string
	if len(password) < minPasswordLen {
		reasons = append(reasons, "password must be at least 8 characters long")
	}
	return reasons
}

func (s *AuthService) Register(ctx context.Context, req RegisterInput) (*models.User, []string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "email", req.Email)

	ve := &ValidationError{}
	if req.UserName == "" {
		ve.add("userName", "username is required")
	}
	if req.Email == "" {
		ve.add("email", "email is required")
	} else if !validEmail(req.Email) {
		ve.add("email", "email is not valid")
	}
	if req.Password == "" {
		ve.add("password", "password is required")
	}
	if req.Password != req.ConfirmPassword {
		ve.add("confirmPassword", "passwords do not match")
	}
	if req.Country == "" {
		ve.add("country", "country is required")
	}
	if err := ve.orNil(); err != nil {
		l.Warn("register_failed", "status", 400, "error", err)
		return nil, nil, err
	}

	// fast path only, the unique index is the real guarantee
	if _, err := s.Store.FindUserByEmail(ctx, req.Email); err == nil {
		l.Warn("register_failed", "status", 409, "reason", "email already registered")
		return nil, nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_failed", "status", 500, "error", err)
		return nil, nil, err
	}

	if reasons := passwordReasons(req.Password); len(reasons) > 0 {
		l.Warn("register_failed", "status", 400, "reason", "password policy")
		return nil, nil, &IdentityError{Reasons: reasons}
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.UserName,
		PasswordHash: pwHash,
		Country:      req.Country,
	}

	if err := s.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateUser) {
			l.Warn("register_failed", "status", 409, "reason", "email or username already registered")
			return nil, nil, ErrConflict
		}
		l.Error("register_failed", "status", 500, "error", err)
		return nil, nil, err
	}

	if err := s.Store.AssignRole(ctx, user.ID, RoleUser); err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot assign default role", "error", err)
		return nil, nil, err
	}

	s.publish(ctx, user.ID.String(), map[string]any{
		"type":   "user_registered",
		"userID": user.ID.String(),
		"email":  user.Email,
	})

	l.Info("register_successful", "user_id", user.ID)
	return user, []string{RoleUser}, nil
}

type RegisterInput struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	Country         string
}

// Login resolves the identifier as an email first, then as a username. The
// password check runs before the lockout check so a blocked account with a
// wrong password still reads as invalid credentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "identifier", identifier)

	ve := &ValidationError{}
	if identifier == "" {
		ve.add("emailOrUserName", "email or username is required")
	}
	if password == "" {
		ve.add("password", "password is required")
	}
	if err := ve.orNil(); err != nil {
		l.Warn("login_failed", "status", 400, "error", err)
		return nil, err
	}

	user, err := s.Store.FindUserByEmail(ctx, identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.Store.FindUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 404, "reason", "no such user")
			return nil, ErrNotFound
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	if user.Blocked() {
		l.Warn("login_failed", "status", 403, "reason", "user is blocked")
		return nil, ErrUserBlocked
	}

	roles, err := s.Store.ListRoles(ctx, user.ID)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	token, exp, err := s.Tokens.IssueToken(user.ID.String(), user.Email, user.Username, roles, time.Now().UTC())
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "user_id", user.ID)
	return &LoginResult{User: user, Roles: roles, Token: token, Exp: exp}, nil
}

// BlockUser opens an indefinite lockout window. Blocking an already blocked
// user succeeds.
func (s *AuthService) BlockUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.block", "user_id", userID)

	until := blockedSentinel
	if err := s.Store.SetLockedUntil(ctx, userID, &until); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("block_failed", "status", 404, "reason", "no such user")
			return nil, ErrNotFound
		}
		l.Error("block_failed", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, userID.String(), map[string]any{
		"type":   "user_blocked",
		"userID": userID.String(),
	})

	l.Info("block_successful")
	return s.findUser(ctx, userID)
}

// UnblockUser clears the lockout window. Unblocking an unblocked user succeeds.
func (s *AuthService) UnblockUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.unblock", "user_id", userID)

	if err := s.Store.SetLockedUntil(ctx, userID, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("unblock_failed", "status", 404, "reason", "no such user")
			return nil, ErrNotFound
		}
		l.Error("unblock_failed", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, userID.String(), map[string]any{
		"type":   "user_unblocked",
		"userID": userID.String(),
	})

	l.Info("unblock_successful")
	return s.findUser(ctx, userID)
}

func (s *AuthService) findUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GeneratePasswordResetToken issues a fresh single-use token and hands it to
// the mailer. Outstanding tokens are left untouched.
func (s *AuthService) GeneratePasswordResetToken(ctx context.Context, email string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.forgot_password", "email", email)

	user, err := s.Store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("forgot_password_failed", "status", 404, "reason", "no such user")
			return "", ErrNotFound
		}
		l.Error("forgot_password_failed", "status", 500, "error", err)
		return "", err
	}

	token, err := s.Store.CreateResetToken(ctx, user.ID)
	if err != nil {
		l.Error("forgot_password_failed", "status", 500, "error", err)
		return "", err
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendResetToken(ctx, user.Email, token); err != nil {
			l.Error("reset_token_mail_error", "error", err)
		}
	}

	l.Info("forgot_password_successful", "user_id", user.ID)
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, token, newPassword, confirmPassword string) error {
	l := logging.FromContext(ctx).With("svc", "auth.reset_password", "email", email)

	// validated before any store call
	ve := &ValidationError{}
	if token == "" {
		ve.add("token", "token is required")
	}
	if newPassword != confirmPassword {
		ve.add("confirmPassword", "passwords do not match")
	}
	if len(newPassword) < minPasswordLen {
		ve.add("newPassword", "password must be at least 8 characters long")
	}
	if err := ve.orNil(); err != nil {
		l.Warn("reset_password_failed", "status", 400, "error", err)
		return err
	}

	user, err := s.Store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("reset_password_failed", "status", 404, "reason", "no such user")
			return ErrNotFound
		}
		l.Error("reset_password_failed", "status", 500, "error", err)
		return err
	}

	newHash, err := hash.HashPassword(newPassword)
	if err != nil {
		l.Error("reset_password_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	if err := s.Store.ConsumeResetToken(ctx, user.ID, token, newHash); err != nil {
		if errors.Is(err, repo.ErrResetTokenInvalid) {
			l.Warn("reset_password_failed", "status", 400, "reason", "bad reset token")
			return &IdentityError{Reasons: []string{"reset token is invalid, expired or already used"}}
		}
		l.Error("reset_password_failed", "status", 500, "error", err)
		return err
	}

	l.Info("reset_password_successful", "user_id", user.ID)
	return nil
}

// Logout is a stateless acknowledgement. Issued bearer tokens remain valid
// until they expire.
func (s *AuthService) Logout(ctx context.Context) {
	logging.FromContext(ctx).With("svc", "auth.logout").Info("logout_successful")
}
