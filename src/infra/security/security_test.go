package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"forumapi/src/core/domain"
	"forumapi/src/infra/config"
)

func newManager() *JWTTokenManager {
	return NewJWTTokenManager(config.AuthConfig{
		AccessTokenKey:  "access-key",
		RefreshTokenKey: "refresh-key",
		AccessTokenAge:  time.Hour,
		RefreshTokenAge: 24 * time.Hour,
	})
}

func TestBcryptHashAndCompare(t *testing.T) {
	h := NewBcryptPasswordHash(bcrypt.MinCost)

	hashed, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)

	require.NoError(t, h.Compare("secret", hashed))

	err = h.Compare("wrong", hashed)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newManager()

	tok, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)

	id, err := m.VerifyAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestAccessTokenRejectsRefreshToken(t *testing.T) {
	m := newManager()

	refresh, err := m.CreateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(refresh)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestRefreshTokenVerifyAndDecode(t *testing.T) {
	m := newManager()

	refresh, err := m.CreateRefreshToken("user-123")
	require.NoError(t, err)

	require.NoError(t, m.VerifyRefreshToken(refresh))
	id, err := m.DecodeUserID(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)

	access, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)
	err = m.VerifyRefreshToken(access)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestExpiredAccessToken(t *testing.T) {
	m := newManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyAccessToken(tok)
	require.Error(t, err)
}

func TestTamperedAccessToken(t *testing.T) {
	m := newManager()
	tok, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	_, err = m.VerifyAccessToken(parts[0] + ".dGFtcGVyZWQ." + parts[2])
	require.Error(t, err)
}
