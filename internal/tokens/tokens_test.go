package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return &Issuer{
		Secret:   []byte("test-jwt-secret"),
		Issuer:   "lingua-school",
		Audience: "lingua-school-web",
	}
}

func TestIssuer_IssueToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	userID := uuid.NewString()
	now := time.Now().UTC()

	token, exp, err := iss.IssueToken(userID, "alice@example.com", "alice", []string{"User", "Admin"}, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, now.Add(AccessTokenTTL), exp, time.Second)

	claims, err := AccessClaimsFromToken(token, iss.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{"User", "Admin"}, claims.Roles)
	assert.Equal(t, "lingua-school", claims.Issuer)
	require.Len(t, claims.Audience, 1)
	assert.Equal(t, "lingua-school-web", claims.Audience[0])
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, now.Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_IssueToken_SingleRole(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	token, _, err := iss.IssueToken(uuid.NewString(), "bob@example.com", "bob", []string{"User"}, time.Now().UTC())
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, iss.Secret)
	require.NoError(t, err)

	assert.True(t, claims.HasRole("User"))
	assert.False(t, claims.HasRole("Admin"))
}

func TestAccessClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	token, _, err := iss.IssueToken(uuid.NewString(), "a@b.c", "a", nil, time.Now().UTC())
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, []byte("a different secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	issuedAt := time.Now().UTC().Add(-AccessTokenTTL - time.Hour)

	token, _, err := iss.IssueToken(uuid.NewString(), "a@b.c", "a", nil, issuedAt)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, iss.Secret)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := AccessClaimsFromToken("not-a-valid-jwt", []byte("test-jwt-secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}
