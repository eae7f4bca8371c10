package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifecal/backend/internal/model"
	"github.com/lifecal/backend/internal/service"
	"github.com/lifecal/backend/internal/validation"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration data"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.Response
// @Failure 409 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, tokens, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(c, http.StatusConflict, "User with this email already exists")
		case errors.As(err, &weak):
			writeError(c, http.StatusBadRequest, weak.Reason)
		default:
			log.Error().Err(err).Msg("registration failed")
			writeError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	public := user.Public()
	c.JSON(http.StatusCreated, model.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		User:    &public,
		Tokens:  &tokens,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, tokens, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password answer identically so the
		// caller cannot enumerate accounts.
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("login failed")
		writeError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	public := user.Public()
	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    &public,
		Tokens:  &tokens,
	})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh token"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}

	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(c, http.StatusUnauthorized, "User not found")
			return
		}
		writeError(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		Message: "Tokens refreshed successfully",
		Tokens:  &tokens,
	})
}

// Logout godoc
// @Summary Logout
// @Description Stateless: tokens stay valid until expiry, the client discards them.
// @Tags auth
// @Produce json
// @Success 200 {object} model.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: "Logout successful",
	})
}

type normalizer interface {
	Normalize()
}

// bindAndValidate decodes the body and runs schema validation before
// any handler side effect. On failure it writes the 400 itself.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}

	if details := validation.Validate(req); details != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Validation failed",
			Details: details,
		})
		return false
	}
	return true
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, model.Response{Success: false, Error: msg})
}
