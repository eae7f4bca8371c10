package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifecal/backend/internal/config"
	"github.com/lifecal/backend/internal/model"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMisconfigured = errors.New("auth config invalid")
)

// TokenClaims is the signed payload carried by both token kinds. The
// Type tag is checked on verification so a refresh token can never pass
// as an access token or the other way around.
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies access/refresh token pairs. The two
// kinds are signed with distinct secrets so compromising one secret
// does not forge the other kind.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("%w: JWT_REFRESH_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_REFRESH_TTL", ErrMisconfigured)
	}

	return &TokenManager{
		accessSecret:  []byte(cfg.JWTSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssuePair signs a fresh access/refresh token pair for the user.
func (m *TokenManager) IssuePair(userID, email string) (model.TokenPair, error) {
	accessToken, err := m.sign(userID, email, tokenTypeAccess, m.accessSecret, m.accessTTL)
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, err := m.sign(userID, email, tokenTypeRefresh, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (m *TokenManager) VerifyAccess(token string) (*TokenClaims, error) {
	return m.verify(token, m.accessSecret, tokenTypeAccess)
}

func (m *TokenManager) VerifyRefresh(token string) (*TokenClaims, error) {
	return m.verify(token, m.refreshSecret, tokenTypeRefresh)
}

func (m *TokenManager) sign(userID, email, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *TokenManager) verify(tokenStr string, secret []byte, wantType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != wantType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
