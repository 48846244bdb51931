// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Token     string             `json:"token"`
	ExpiresIn int64              `json:"expires_in"` // Token lifetime in seconds.
	User      *entity.PublicView `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and issues a bearer token. Unknown username,
	// wrong password and inactive account all fail with the same opaque error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
