// Package usecase provides hand-written testify mocks for the usecase
// contracts.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.PublicView, error) {
	args := m.Called(ctx, id)
	if view, ok := args.Get(0).(*entity.PublicView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.PublicView, error) {
	args := m.Called(ctx, id, input)
	if view, ok := args.Get(0).(*entity.PublicView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
