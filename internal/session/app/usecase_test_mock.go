package app

import (
	"context"

	"gigconnect_client/internal/session/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthRepository Mock AuthRepository
type MockAuthRepository struct {
	mock.Mock
}

// Login moke login
func (m *MockAuthRepository) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// AdminLogin moke admin login
func (m *MockAuthRepository) AdminLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// Signup moke signup
func (m *MockAuthRepository) Signup(ctx context.Context, params domain.SignupParams) (*domain.AuthResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// Logout moke logout
func (m *MockAuthRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Me moke identity refresh
func (m *MockAuthRepository) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// ForgotPassword moke forgot password
func (m *MockAuthRepository) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// ResetPassword moke reset password
func (m *MockAuthRepository) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}
