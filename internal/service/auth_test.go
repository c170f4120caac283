package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/tokens"
)

type authEnv struct {
	db  *gorm.DB
	rp  *repo.GormRepo
	svc *AuthService
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserRole{}, &models.PasswordResetToken{}))

	rp := repo.New(db)
	return &authEnv{
		db: db,
		rp: rp,
		svc: &AuthService{
			Store: rp,
			Tokens: &tokens.Issuer{
				Secret:   []byte("test-jwt-secret"),
				Issuer:   "lingua-school",
				Audience: "lingua-school-web",
			},
		},
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		UserName:        "alice",
		Email:           "alice@example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
		Country:         "UA",
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{name: "empty username", mutate: func(r *RegisterInput) { r.UserName = "" }, field: "userName"},
		{name: "empty email", mutate: func(r *RegisterInput) { r.Email = "" }, field: "email"},
		{name: "malformed email", mutate: func(r *RegisterInput) { r.Email = "not-an-email" }, field: "email"},
		{name: "empty password", mutate: func(r *RegisterInput) { r.Password = "" }, field: "password"},
		{name: "password mismatch", mutate: func(r *RegisterInput) { r.ConfirmPassword = "Other1234" }, field: "confirmPassword"},
		{name: "empty country", mutate: func(r *RegisterInput) { r.Country = "" }, field: "country"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validRegisterInput()
			tt.mutate(&input)

			user, _, err := env.svc.Register(ctx, input)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	input := validRegisterInput()
	input.Password = "short"
	input.ConfirmPassword = "short"

	user, _, err := env.svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, user)

	var ie *IdentityError
	require.ErrorAs(t, err, &ie)
	assert.NotEmpty(t, ie.Reasons)
}

func TestAuthService_Register_SuccessAndConflict(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	user, roles, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
	assert.Equal(t, []string{RoleUser}, roles)

	// same email again
	dup, _, err := env.svc.Register(ctx, validRegisterInput())
	require.Error(t, err)
	assert.Nil(t, dup)
	assert.ErrorIs(t, err, ErrConflict)

	// same username, different email
	input := validRegisterInput()
	input.Email = "alice2@example.com"
	dup, _, err = env.svc.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, dup)
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{name: "empty identifier", identifier: "", password: "Secret123"},
		{name: "empty password", identifier: "alice", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := env.svc.Login(ctx, tt.identifier, tt.password)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_ByEmailAndUsername(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	for _, identifier := range []string{"alice@example.com", "alice"} {
		res, err := env.svc.Login(ctx, identifier, "Secret123")
		require.NoError(t, err, "identifier %q", identifier)
		require.NotNil(t, res)
		require.NotEmpty(t, res.Token)
		assert.Equal(t, []string{RoleUser}, res.Roles)

		claims, err := tokens.AccessClaimsFromToken(res.Token, env.svc.Tokens.Secret)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID.String(), claims.Subject)
		assert.Equal(t, "alice@example.com", claims.Email)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().UTC().Add(tokens.AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
	}
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	res, err := env.svc.Login(context.Background(), "nobody@example.com", "Secret123")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	user, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	res, err := env.svc.Login(ctx, "alice", "WrongPass1")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// wrong password wins over the lockout, a blocked account must not be
	// distinguishable without valid credentials
	_, err = env.svc.BlockUser(ctx, user.ID)
	require.NoError(t, err)

	res, err = env.svc.Login(ctx, "alice", "WrongPass1")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Blocked(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	user, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	blocked, err := env.svc.BlockUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, blocked.Blocked())

	res, err := env.svc.Login(ctx, "alice@example.com", "Secret123")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUserBlocked)

	unblocked, err := env.svc.UnblockUser(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, unblocked.Blocked())

	res, err = env.svc.Login(ctx, "alice@example.com", "Secret123")
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestAuthService_BlockUnblock_Idempotent(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	user, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		blocked, err := env.svc.BlockUser(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, blocked.Blocked())
	}

	for i := 0; i < 2; i++ {
		unblocked, err := env.svc.UnblockUser(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, unblocked.Blocked())
	}
}

func TestAuthService_BlockUnknownUser(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	user, err := env.svc.BlockUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_PasswordReset_Flow(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	token, err := env.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = env.svc.ResetPassword(ctx, "alice@example.com", token, "NewSecret1", "NewSecret1")
	require.NoError(t, err)

	res, err := env.svc.Login(ctx, "alice@example.com", "NewSecret1")
	require.NoError(t, err)
	require.NotNil(t, res)

	_, err = env.svc.Login(ctx, "alice@example.com", "Secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_PasswordReset_TokenSingleUse(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	token, err := env.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, env.svc.ResetPassword(ctx, "alice@example.com", token, "NewSecret1", "NewSecret1"))

	err = env.svc.ResetPassword(ctx, "alice@example.com", token, "NewSecret2", "NewSecret2")
	require.Error(t, err)

	var ie *IdentityError
	assert.ErrorAs(t, err, &ie)
}

func TestAuthService_PasswordReset_OlderTokenStaysValid(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	first, err := env.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)

	second, err := env.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// issuing a fresh token leaves outstanding ones untouched
	require.NoError(t, env.svc.ResetPassword(ctx, "alice@example.com", first, "NewSecret1", "NewSecret1"))
}

func TestAuthService_PasswordReset_ExpiredToken(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	token, err := env.svc.GeneratePasswordResetToken(ctx, "alice@example.com")
	require.NoError(t, err)

	expired := time.Now().UTC().Add(-time.Minute).Unix()
	require.NoError(t, env.db.Model(&models.PasswordResetToken{}).
		Where("1 = 1").
		Update("expires_at", expired).Error)

	err = env.svc.ResetPassword(ctx, "alice@example.com", token, "NewSecret1", "NewSecret1")
	require.Error(t, err)

	var ie *IdentityError
	assert.ErrorAs(t, err, &ie)
}

func TestAuthService_ResetPassword_ValidatesBeforeStore(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	ctx := context.Background()

	// user does not exist, yet bad input still reads as validation failure
	err := env.svc.ResetPassword(ctx, "nobody@example.com", "", "short", "other")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "token")
	assert.Contains(t, ve.Fields, "confirmPassword")
	assert.Contains(t, ve.Fields, "newPassword")
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	env := newAuthEnv(t)
	token, err := env.svc.GeneratePasswordResetToken(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrNotFound)
}
