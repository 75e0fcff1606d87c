// Package types provides type definitions for structured data used throughout the jobtrack client.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Identity is the authenticated user as issued by the login operation.
// Immutable once issued; the session owns the only live copy.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupRequest represents the request to register a new account.
type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the signup/login response with the issued token
// and the identity it was issued for.
type AuthResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
