package validation

import (
	"strings"
	"testing"

	"github.com/lifecal/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	req := model.RegisterRequest{
		Email:     "a@b.com",
		Password:  "Abcdef123456!",
		FirstName: "Ada",
		LastName:  "O'Brien-Smith",
	}
	assert.Nil(t, Validate(&req))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := model.RegisterRequest{
		Email:    "nope",
		Password: "short",
	}
	details := Validate(&req)
	assert.Contains(t, details, "Please provide a valid email address")
	assert.Contains(t, details, "Password must be at least 12 characters long")
	assert.Len(t, details, 2)
}

func TestValidateRejectsSingleSegmentDomain(t *testing.T) {
	details := Validate(&model.RegisterRequest{
		Email:    "a@b",
		Password: "Abcdef123456!",
	})
	assert.Equal(t, []string{"Please provide a valid email address"}, details)

	details = Validate(&model.LoginRequest{Email: "a@b", Password: "whatever"})
	assert.Equal(t, []string{"Please provide a valid email address"}, details)
}

func TestValidatePasswordMaxMessages(t *testing.T) {
	long := strings.Repeat("Abc123!x", 17) // 136 characters

	// Register names the constraint; login only reports a generic
	// format failure.
	details := Validate(&model.RegisterRequest{Email: "a@b.com", Password: long})
	assert.Contains(t, details, "Password must be less than 128 characters")

	details = Validate(&model.LoginRequest{Email: "a@b.com", Password: long})
	assert.Equal(t, []string{"Invalid password format"}, details)
}

func TestValidateLoginRequest(t *testing.T) {
	assert.Nil(t, Validate(&model.LoginRequest{Email: "a@b.com", Password: "whatever"}))

	details := Validate(&model.LoginRequest{})
	assert.Contains(t, details, "Email is required")
	assert.Contains(t, details, "Password is required")
}

func TestValidateRefreshRequest(t *testing.T) {
	details := Validate(&model.RefreshRequest{})
	assert.Equal(t, []string{"Refresh token is required"}, details)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Email", label("email"))
	assert.Equal(t, "First name", label("firstName"))
	assert.Equal(t, "Refresh token", label("refreshToken"))
}
