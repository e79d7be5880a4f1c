package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the access token issued on a successful login.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
}

// ChangePasswordRequest represents a password change for the authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ResetPasswordRequest represents a password reset by email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordResponse returns the generated temporary password.
type ResetPasswordResponse struct {
	Message     string `json:"message"`
	NewPassword string `json:"new_password"`
}
