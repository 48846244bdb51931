package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"max=100"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput defines the mutable user fields. Nil pointers leave the
// corresponding field unchanged.
type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	User *entity.PublicView `json:"user"`
}

// UserUsecase defines the interface for user lifecycle operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.PublicView, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.PublicView, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
