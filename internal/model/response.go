package model

// Every endpoint answers with this envelope shape. Only the fields
// relevant to the call are populated.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	// Details carries itemized validation messages on 400 responses.
	Details []string `json:"details,omitempty"`
}

// AuthResponse extends the envelope with the user projection and token
// pair returned by register and login.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
	Tokens  *TokenPair    `json:"tokens,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
