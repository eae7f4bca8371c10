package service

import (
	"testing"

	"github.com/lifecal/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:        "access-secret-for-tests",
		JWTRefreshSecret: "refresh-secret-for-tests",
		AccessTTL:        "15m",
		RefreshTTL:       "168h",
	}
}

func TestNewTokenManagerRequiresSecrets(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTSecret = ""
	_, err := NewTokenManager(cfg)
	require.ErrorIs(t, err, ErrMisconfigured)

	cfg = testAuthConfig()
	cfg.JWTRefreshSecret = ""
	_, err = NewTokenManager(cfg)
	require.ErrorIs(t, err, ErrMisconfigured)

	cfg = testAuthConfig()
	cfg.AccessTTL = "bogus"
	_, err = NewTokenManager(cfg)
	require.ErrorIs(t, err, ErrMisconfigured)
}

func TestIssuePairAndVerify(t *testing.T) {
	m, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	pair, err := m.IssuePair("user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := m.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "access", claims.Type)

	claims, err = m.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestVerifyRejectsCrossTokenKinds(t *testing.T) {
	m, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	pair, err := m.IssuePair("user-1", "a@b.com")
	require.NoError(t, err)

	// A refresh token must never pass access verification, and the
	// other way around: the secrets differ and the type tag differs.
	_, err = m.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	m1, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTSecret = "a-different-secret"
	other.JWTRefreshSecret = "another-different-secret"
	m2, err := NewTokenManager(other)
	require.NoError(t, err)

	pair, err := m1.IssuePair("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = m2.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m2.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.AccessTTL = "-1m"
	m, err := NewTokenManager(cfg)
	require.NoError(t, err)

	pair, err := m.IssuePair("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.VerifyAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
