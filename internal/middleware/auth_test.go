package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmarchuk/lingua_school/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func issueTestToken(t *testing.T, roles []string, issuedAt time.Time) (string, string) {
	t.Helper()

	iss := &tokens.Issuer{Secret: testSecret, Issuer: "lingua-school", Audience: "lingua-school-web"}
	userID := uuid.NewString()
	token, _, err := iss.IssueToken(userID, "user@example.com", "user", roles, issuedAt)
	require.NoError(t, err)
	return token, userID
}

func newAuthContext(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestBearerAuth_RequireAuth_Success(t *testing.T) {
	t.Parallel()

	token, userID := issueTestToken(t, []string{"User"}, time.Now().UTC())
	m := NewBearerAuth(testSecret)
	c := newAuthContext("Bearer " + token)

	require.NoError(t, m.RequireAuth(okHandler)(c))
	assert.Equal(t, userID, UserID(c))
	assert.False(t, IsAdmin(c))
}

func TestBearerAuth_RequireAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	m := NewBearerAuth(testSecret)
	err := m.RequireAuth(okHandler)(newAuthContext(""))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestBearerAuth_RequireAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	m := NewBearerAuth(testSecret)

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-without-scheme"} {
		err := m.RequireAuth(okHandler)(newAuthContext(header))

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestBearerAuth_RequireAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	token, _ := issueTestToken(t, []string{"User"}, time.Now().UTC().Add(-tokens.AccessTokenTTL-time.Hour))
	m := NewBearerAuth(testSecret)

	err := m.RequireAuth(okHandler)(newAuthContext("Bearer " + token))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestBearerAuth_RequireAdmin(t *testing.T) {
	t.Parallel()

	m := NewBearerAuth(testSecret)

	userToken, _ := issueTestToken(t, []string{"User"}, time.Now().UTC())
	err := m.RequireAdmin(okHandler)(newAuthContext("Bearer " + userToken))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)

	adminToken, _ := issueTestToken(t, []string{"User", "Admin"}, time.Now().UTC())
	c := newAuthContext("Bearer " + adminToken)
	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.True(t, IsAdmin(c))
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _ := issueTestToken(t, []string{"User"}, time.Now().UTC())
	m := NewBearerAuth([]byte("another-secret"))

	err := m.RequireAuth(okHandler)(newAuthContext("Bearer " + token))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
