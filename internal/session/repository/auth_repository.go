package repository

import (
	"context"

	"gigconnect_client/internal/session/domain"
	"gigconnect_client/pkg/httpclient"
)

// AuthRepository auth REST surface
type AuthRepository interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	AdminLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	Signup(ctx context.Context, params domain.SignupParams) (*domain.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type restAuthRepository struct {
	http *httpclient.Client
}

// NewRESTAuthRepository create auth repository over the REST API
func NewRESTAuthRepository(http *httpclient.Client) AuthRepository {
	return &restAuthRepository{http: http}
}

func (r *restAuthRepository) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	resp := new(domain.AuthResponse)
	if err := r.http.Post(ctx, "/api/auth/login", creds, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *restAuthRepository) AdminLogin(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	resp := new(domain.AuthResponse)
	if err := r.http.Post(ctx, "/api/auth/admin-login", creds, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *restAuthRepository) Signup(ctx context.Context, params domain.SignupParams) (*domain.AuthResponse, error) {
	resp := new(domain.AuthResponse)
	if err := r.http.Post(ctx, "/api/auth/signup", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *restAuthRepository) Logout(ctx context.Context) error {
	return r.http.Post(ctx, "/api/auth/logout", struct{}{}, nil)
}

func (r *restAuthRepository) Me(ctx context.Context) (*domain.User, error) {
	user := new(domain.User)
	if err := r.http.Get(ctx, "/api/auth/me", user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *restAuthRepository) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return r.http.Post(ctx, "/api/auth/forgot-password", body, nil)
}

func (r *restAuthRepository) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	return r.http.Post(ctx, "/api/auth/reset-password", body, nil)
}
