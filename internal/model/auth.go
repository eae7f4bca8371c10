package model

import (
	"strings"
	"time"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,emaildomain,max=255"`
	Password  string `json:"password" validate:"required,min=12,max=128,complexity"`
	FirstName string `json:"firstName" validate:"omitempty,max=50,personname"`
	LastName  string `json:"lastName" validate:"omitempty,max=50,personname"`
}

// Normalize mirrors the trim/lowercase coercion applied at the request
// boundary before validation.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,emaildomain,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPair is the access/refresh token tuple returned at register,
// login and refresh time. Neither token is stored server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUser is the request-scoped identity attached by the auth
// middleware after a successful access-token verification.
type AuthUser struct {
	UserID string
	Email  string
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserResponse is the public projection of a user record. The password
// hash never leaves the persistence layer boundary.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (u *User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
