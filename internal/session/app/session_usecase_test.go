package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"gigconnect_client/internal/session/domain"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"
	"gigconnect_client/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	os.Exit(m.Run())
}

func buyerToken(t *testing.T, userID string) string {
	t.Helper()
	str, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID: userID,
		Role:   string(token.RoleBuyer),
	}).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return str
}

func validSignup() domain.SignupParams {
	return domain.SignupParams{
		Username: "alice",
		Email:    "alice@test.io",
		Password: "Sup3r$ecretPwd",
		Role:     "buyer",
	}
}

func TestLoginStoresSession(t *testing.T) {
	authRepo := new(MockAuthRepository)
	authRepo.On("Login", mock.Anything, domain.Credentials{Email: "a@b.c", Password: "pw"}).
		Return(&domain.AuthResponse{Token: buyerToken(t, "u-1"), User: domain.User{ID: "u-1", Role: "buyer"}}, nil)

	usecase := NewSessionUseCase(authRepo)
	session, err := usecase.Login(context.Background(), "a@b.c", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", session.User.ID)

	assert.NotNil(t, usecase.Current())
	assert.Equal(t, session.Token, usecase.Token())
	assert.Equal(t, "u-1", usecase.Claims().UserID)
}

func TestLoginRejectsBannedAccount(t *testing.T) {
	authRepo := new(MockAuthRepository)
	authRepo.On("Login", mock.Anything, mock.Anything).
		Return(&domain.AuthResponse{Token: "tk", User: domain.User{ID: "u-1", IsBanned: true}}, nil)

	usecase := NewSessionUseCase(authRepo)
	_, err := usecase.Login(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
	assert.Equal(t, errprocess.KindAuthorization, errprocess.KindOf(err))
	assert.Nil(t, usecase.Current())
}

func TestLoginRequiresCredentials(t *testing.T) {
	usecase := NewSessionUseCase(new(MockAuthRepository))
	_, err := usecase.Login(context.Background(), "", "")
	assert.Error(t, err)
	assert.Equal(t, errprocess.KindValidation, errprocess.KindOf(err))
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	authRepo := new(MockAuthRepository)
	authRepo.On("AdminLogin", mock.Anything, mock.Anything).
		Return(&domain.AuthResponse{Token: "tk", User: domain.User{ID: "u-1", Role: "buyer"}}, nil)

	usecase := NewSessionUseCase(authRepo)
	_, err := usecase.AdminLogin(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
	assert.Nil(t, usecase.Current())
}

func TestSignupValidatesBeforeRequest(t *testing.T) {
	authRepo := new(MockAuthRepository)
	usecase := NewSessionUseCase(authRepo)

	cases := []struct {
		name   string
		mutate func(*domain.SignupParams)
	}{
		{"short password", func(p *domain.SignupParams) { p.Password = "Ab1!" }},
		{"no uppercase", func(p *domain.SignupParams) { p.Password = "sup3r$ecretpwd" }},
		{"no lowercase", func(p *domain.SignupParams) { p.Password = "SUP3R$ECRETPWD" }},
		{"no digit", func(p *domain.SignupParams) { p.Password = "Super$ecretPwd" }},
		{"no special", func(p *domain.SignupParams) { p.Password = "Sup3rSecretPwd" }},
		{"bad role", func(p *domain.SignupParams) { p.Role = "admin" }},
		{"bad email", func(p *domain.SignupParams) { p.Email = "not-an-email" }},
		{"no username", func(p *domain.SignupParams) { p.Username = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validSignup()
			tc.mutate(&params)

			_, err := usecase.Signup(context.Background(), params)
			assert.Error(t, err)
			assert.Equal(t, errprocess.KindValidation, errprocess.KindOf(err))
		})
	}
	authRepo.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignupSuccess(t *testing.T) {
	params := validSignup()
	authRepo := new(MockAuthRepository)
	authRepo.On("Signup", mock.Anything, params).
		Return(&domain.AuthResponse{Token: buyerToken(t, "u-9"), User: domain.User{ID: "u-9", Username: "alice", Role: "buyer"}}, nil)

	usecase := NewSessionUseCase(authRepo)
	session, err := usecase.Signup(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, "u-9", session.User.ID)
}

func TestLogoutClearsLocalSessionEvenOnServerError(t *testing.T) {
	authRepo := new(MockAuthRepository)
	authRepo.On("Login", mock.Anything, mock.Anything).
		Return(&domain.AuthResponse{Token: buyerToken(t, "u-1"), User: domain.User{ID: "u-1"}}, nil)
	authRepo.On("Logout", mock.Anything).Return(errors.New("server down"))

	usecase := NewSessionUseCase(authRepo)
	_, err := usecase.Login(context.Background(), "a@b.c", "pw")
	assert.NoError(t, err)

	err = usecase.Logout(context.Background())
	assert.Error(t, err)
	assert.Nil(t, usecase.Current(), "本地 session 無論如何都要清掉")
	assert.Empty(t, usecase.Token())
}

func TestMeSyncsLocalCopy(t *testing.T) {
	authRepo := new(MockAuthRepository)
	authRepo.On("Login", mock.Anything, mock.Anything).
		Return(&domain.AuthResponse{Token: buyerToken(t, "u-1"), User: domain.User{ID: "u-1", IsVerified: false}}, nil)
	authRepo.On("Me", mock.Anything).
		Return(&domain.User{ID: "u-1", IsVerified: true}, nil)

	usecase := NewSessionUseCase(authRepo)
	_, err := usecase.Login(context.Background(), "a@b.c", "pw")
	assert.NoError(t, err)

	user, err := usecase.Me(context.Background())
	assert.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.True(t, usecase.Current().User.IsVerified)
}

func TestResetPasswordEnforcesStrength(t *testing.T) {
	authRepo := new(MockAuthRepository)
	usecase := NewSessionUseCase(authRepo)

	err := usecase.ResetPassword(context.Background(), "rt-1", "weak")
	assert.Error(t, err)
	authRepo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)

	authRepo.On("ResetPassword", mock.Anything, "rt-1", "Sup3r$ecretPwd").Return(nil)
	assert.NoError(t, usecase.ResetPassword(context.Background(), "rt-1", "Sup3r$ecretPwd"))
}
