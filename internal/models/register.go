package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// ErrorResponse is the single-message error body used by create, update and register.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: A bookmark with this URL already exists
	Error string `json:"error"`
}

// AuthErrorResponse is returned when Basic credentials are missing or wrong.
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// example: Invalid username or password
	Message string `json:"message"`
}
