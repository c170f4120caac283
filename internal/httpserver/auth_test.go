package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmarchuk/lingua_school/internal/models"
	"github.com/kmarchuk/lingua_school/internal/repo"
	"github.com/kmarchuk/lingua_school/internal/service"
	"github.com/kmarchuk/lingua_school/internal/tokens"
	"github.com/kmarchuk/lingua_school/internal/transport"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.UserRole{}, &models.PasswordResetToken{},
		&models.Lesson{}, &models.Quiz{}, &models.QuizQuestion{},
		&models.VocabularyCategory{}, &models.VocabularyWord{},
		&models.PronunciationItem{}, &models.KidLesson{}, &models.KidQuizQuestion{},
		&models.Name{},
	))

	return db
}

func newAuthHandler(t *testing.T) (*AuthHTTP, *gorm.DB) {
	t.Helper()

	db := initTestDB(t)
	h := &AuthHTTP{
		Svc: &service.AuthService{
			Store: repo.New(db),
			Tokens: &tokens.Issuer{
				Secret:   []byte("test-jwt-secret"),
				Issuer:   "lingua-school",
				Audience: "lingua-school-web",
			},
		},
	}
	return h, db
}

func jsonRequest(t *testing.T, method, target string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func registerPayload() map[string]string {
	return map[string]string{
		"userName":        "alice",
		"email":           "alice@example.com",
		"password":        "Secret123",
		"confirmPassword": "Secret123",
		"country":         "UA",
	}
}

func TestAuthHTTP_Register_SuccessAndConflict(t *testing.T) {
	h, db := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var summary transport.UserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, "alice@example.com", summary.Email)
	assert.Equal(t, "alice", summary.Username)
	assert.False(t, summary.IsBlocked)
	assert.Equal(t, []string{"User"}, summary.Roles)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "conflict", resp.Code)
	assert.NotEmpty(t, resp.Title)
	assert.NotEmpty(t, resp.Detail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthHTTP_Register_ValidationFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	payload := registerPayload()
	payload["email"] = ""
	payload["confirmPassword"] = "Other1234"

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "validation_error", resp.Code)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "confirmPassword")
}

func TestAuthHTTP_Login_Success(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "alice",
		"password":        "Secret123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.False(t, resp.IsBlocked)

	claims, err := tokens.AccessClaimsFromToken(resp.Token, h.Svc.Tokens.Secret)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.Subject)
	assert.True(t, claims.HasRole("User"))
}

func TestAuthHTTP_Login_WrongPassword(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "alice",
		"password":        "WrongPass1",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "invalid_credentials", resp.Code)
}

func TestAuthHTTP_Login_Unknown(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "nobody",
		"password":        "Secret123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "not_found", resp.Code)
}

func TestAuthHTTP_BlockThenLogin(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))

	var summary transport.UserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	userID := summary.ID

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/block/"+userID, nil)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	require.NoError(t, h.Block(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var blockResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blockResp))
	assert.Equal(t, true, blockResp["isBlocked"])

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "alice@example.com",
		"password":        "Secret123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "user_blocked", resp.Code)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/unblock/"+userID, nil)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	require.NoError(t, h.Unblock(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "alice@example.com",
		"password":        "Secret123",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHTTP_Block_UnknownUser(t *testing.T) {
	h, _ := newAuthHandler(t)
	userID := uuid.NewString()

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/block/"+userID, nil)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	require.NoError(t, h.Block(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHTTP_Block_BadID(t *testing.T) {
	h, db := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/block/abc", nil)
	c.SetParamNames("userId")
	c.SetParamValues("abc")
	require.NoError(t, h.Block(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// body must be exactly one structured error object, nothing appended
	var resp ErrorResponse
	dec := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, dec.Decode(&resp))
	require.False(t, dec.More(), "response carries more than one JSON value")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "validation_error", resp.Code)
	assert.Contains(t, resp.Fields, "userId")

	// the bad id never reaches the store
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("locked_until IS NOT NULL").Count(&count).Error)
	assert.Zero(t, count)
}

func TestAuthHTTP_PasswordResetFlow(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", registerPayload())
	require.NoError(t, h.Register(c))

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "alice@example.com",
	})
	require.NoError(t, h.ForgotPassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var tokenResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResp))
	token := tokenResp["token"]
	require.NotEmpty(t, token)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"email":           "alice@example.com",
		"token":           token,
		"newPassword":     "NewSecret1",
		"confirmPassword": "NewSecret1",
	})
	require.NoError(t, h.ResetPassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"emailOrUserName": "alice",
		"password":        "NewSecret1",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// token is single use
	c, rec = jsonRequest(t, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"email":           "alice@example.com",
		"token":           token,
		"newPassword":     "NewSecret2",
		"confirmPassword": "NewSecret2",
	})
	require.NoError(t, h.ResetPassword(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "identity_error", resp.Code)
}

func TestAuthHTTP_ForgotPassword_UnknownEmail(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "nobody@example.com",
	})
	require.NoError(t, h.ForgotPassword(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHTTP_Logout(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/logout", nil)
	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
