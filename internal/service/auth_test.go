package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lifecal/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory AuthRepository; missing rows surface as pgx.ErrNoRows like
// the real store.
type fakeAuthRepo struct {
	usersByEmail map[string]*model.User
	usersByID    map[string]*model.User
	calendars    []*model.Calendar
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: make(map[string]*model.User),
		usersByID:    make(map[string]*model.User),
	}
}

func (f *fakeAuthRepo) CreateUser(_ context.Context, email, passwordHash string, firstName, lastName *string) (*model.User, error) {
	if _, ok := f.usersByEmail[email]; ok {
		return nil, &duplicateEmailError{}
	}
	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.usersByEmail[email] = user
	f.usersByID[user.ID] = user
	return user, nil
}

func (f *fakeAuthRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if user, ok := f.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAuthRepo) GetUserByID(_ context.Context, userID string) (*model.User, error) {
	if user, ok := f.usersByID[userID]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAuthRepo) CreateCalendar(_ context.Context, userID, name string, description *string, color string, isDefault bool) (*model.Calendar, error) {
	cal := &model.Calendar{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
		IsDefault:   isDefault,
	}
	f.calendars = append(f.calendars, cal)
	return cal, nil
}

type duplicateEmailError struct{}

func (e *duplicateEmailError) Error() string { return "duplicate email" }

func newTestAuthService(t *testing.T, repo AuthRepository) *AuthService {
	t.Helper()
	tokens, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)
	return NewAuthService(repo, tokens)
}

func TestRegisterCreatesUserAndDefaultCalendar(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	user, pair, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEqual(t, "Abcdef123456!", user.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	require.Len(t, repo.calendars, 1)
	assert.Equal(t, user.ID, repo.calendars[0].UserID)
	assert.True(t, repo.calendars[0].IsDefault)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Ghijkl789012?",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsWeakPasswordBeforePersisting(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "short",
	})
	var weak *WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Empty(t, repo.usersByEmail)
	assert.Empty(t, repo.calendars)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	// Wrong password for a known account and an unknown account must
	// fail with the very same error value.
	_, _, wrongPassword := svc.Login(context.Background(), "a@b.com", "Wrong123456789!")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@b.com", "Abcdef123456!")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	registered, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	user, pair, err := svc.Login(context.Background(), "a@b.com", "Abcdef123456!")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefreshReissuesBothTokens(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	user, pair, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)

	claims, err := svc.tokens.VerifyRefresh(fresh.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Stateless model: the original refresh token stays usable until
	// its own expiry.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	user, pair, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	delete(repo.usersByEmail, user.Email)
	delete(repo.usersByID, user.ID)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(t, repo)

	_, pair, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@b.com",
		Password: "Abcdef123456!",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
