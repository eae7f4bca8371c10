package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lifecal/backend/internal/config"
	"github.com/lifecal/backend/internal/service"
)

func newTestTokenManager(t *testing.T) *service.TokenManager {
	t.Helper()
	m, err := service.NewTokenManager(config.AuthConfig{
		JWTSecret:        "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTTL:        "15m",
		RefreshTTL:       "168h",
	})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return m
}

func newProtectedRouter(tokens *service.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		user := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.UserID, "email": user.Email})
	})
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newProtectedRouter(newTestTokenManager(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["error"] != "Access token required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
}

func TestAuthMiddlewareEmptyBearer(t *testing.T) {
	r := newProtectedRouter(newTestTokenManager(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newProtectedRouter(newTestTokenManager(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbled.token.value")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["error"] != "Invalid or expired token" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	tokens := newTestTokenManager(t)
	r := newProtectedRouter(tokens)

	pair, err := tokens.IssuePair("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for refresh token, got %d", w.Code)
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	tokens := newTestTokenManager(t)
	r := newProtectedRouter(tokens)

	pair, err := tokens.IssuePair("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["userId"] != "user-1" || body["email"] != "a@b.com" {
		t.Fatalf("unexpected identity: %v", body)
	}
}
