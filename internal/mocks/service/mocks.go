// Package service provides hand-written testify mocks for the domain
// service contracts.
package service

import (
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, encodedHash string) bool {
	args := m.Called(password, encodedHash)

	return args.Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) TokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
