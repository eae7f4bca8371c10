package service

import (
	"context"
	"errors"

	"github.com/lifecal/backend/internal/db"
	"github.com/lifecal/backend/internal/model"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	defaultCalendarName  = "Personal Calendar"
	defaultCalendarDesc  = "My personal events and appointments"
	defaultCalendarColor = "#3B82F6"
)

// AuthRepository is the persistence surface Register/Login/Refresh
// need; *db.Postgres implements it.
type AuthRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	CreateCalendar(ctx context.Context, userID, name string, description *string, color string, isDefault bool) (*model.Calendar, error)
}

type AuthService struct {
	repo   AuthRepository
	tokens *TokenManager
}

func NewAuthService(repo AuthRepository, tokens *TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new account with its default calendar and issues
// the first token pair. A weak password surfaces as *WeakPasswordError
// before anything is persisted.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, model.TokenPair, error) {
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, model.TokenPair{}, ErrEmailTaken
	} else if !db.IsNoRows(err) {
		return nil, model.TokenPair{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, model.TokenPair{}, err
	}

	user, err := s.repo.CreateUser(ctx, req.Email, hash, optional(req.FirstName), optional(req.LastName))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, model.TokenPair{}, ErrEmailTaken
		}
		return nil, model.TokenPair{}, err
	}

	desc := defaultCalendarDesc
	if _, err := s.repo.CreateCalendar(ctx, user.ID, defaultCalendarName, &desc, defaultCalendarColor, true); err != nil {
		return nil, model.TokenPair{}, err
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, model.TokenPair{}, err
	}

	return user, pair, nil
}

// Login verifies the credentials and issues a fresh token pair. An
// unknown email and a wrong password both come back as
// ErrInvalidCredentials so callers cannot tell the two apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, model.TokenPair, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, model.TokenPair{}, ErrInvalidCredentials
		}
		return nil, model.TokenPair{}, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, model.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, model.TokenPair{}, err
	}

	return user, pair, nil
}

// Refresh verifies the refresh token, re-checks that the user still
// exists and reissues a brand-new token pair. Nothing is invalidated
// server-side, so a valid refresh token stays usable until its own
// expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return model.TokenPair{}, ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if db.IsNoRows(err) {
			return model.TokenPair{}, ErrUserNotFound
		}
		return model.TokenPair{}, err
	}

	return s.tokens.IssuePair(user.ID, user.Email)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
