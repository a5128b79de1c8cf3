package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gigconnect_client/internal/session/domain"
	"gigconnect_client/internal/session/repository"
	"gigconnect_client/pkg/encrypt"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"
	"gigconnect_client/pkg/token"

	"go.uber.org/zap"
)

// SessionUseCase 這裡封裝了對外提供的應用服務
type SessionUseCase interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.Session, error)
	Signup(ctx context.Context, params domain.SignupParams) (*domain.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	// Current returns the held session, nil when logged out.
	Current() *domain.Session
	// Token bearer credential for the REST client, "" when logged out.
	Token() string
	// Claims identity parsed out of the held token, nil when logged out.
	Claims() *token.Claims
}

type sessionUseCase struct {
	authRepo repository.AuthRepository

	mu      sync.Mutex
	session *domain.Session
}

// NewSessionUseCase 建立一個新的 SessionUseCase
func NewSessionUseCase(authRepo repository.AuthRepository) SessionUseCase {
	return &sessionUseCase{authRepo: authRepo}
}

func (s *sessionUseCase) store(resp *domain.AuthResponse) *domain.Session {
	session := &domain.Session{
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: time.Now(),
	}
	if claims, err := token.ParseClaims(resp.Token); err == nil && claims.ExpiresAt != nil {
		session.ExpiredAt = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session
}

// Login
func (s *sessionUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, errprocess.SetKind(errprocess.KindValidation, "email and password are required", nil)
	}

	resp, err := s.authRepo.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		logger.Log.Error("login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if resp.User.IsBanned {
		return nil, errprocess.SetKind(errprocess.KindAuthorization, "account is banned", nil)
	}

	logger.Log.Info("logged in", zap.String("user_id", resp.User.ID), zap.String("role", resp.User.Role))
	return s.store(resp), nil
}

// AdminLogin 走獨立端點，回傳非 admin 視為錯誤
func (s *sessionUseCase) AdminLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	resp, err := s.authRepo.AdminLogin(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.User.Role != string(token.RoleAdmin) {
		return nil, errprocess.SetKind(errprocess.KindAuthorization, "not an admin account", nil)
	}
	return s.store(resp), nil
}

// Signup 先做本地欄位與密碼強度檢查，通過才打 API
func (s *sessionUseCase) Signup(ctx context.Context, params domain.SignupParams) (*domain.Session, error) {
	if err := params.Validate(); err != nil {
		return nil, errprocess.SetKind(errprocess.KindValidation, err.Error(), err)
	}

	resp, err := s.authRepo.Signup(ctx, params)
	if err != nil {
		return nil, err
	}
	logger.Log.Info(fmt.Sprintf("usecase Signup : %s (%s)", resp.User.Username, resp.User.Role))
	return s.store(resp), nil
}

// Logout 本地 session 一定清掉；server 呼叫失敗只記 log
func (s *sessionUseCase) Logout(ctx context.Context) error {
	err := s.authRepo.Logout(ctx)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return err
}

// Me
func (s *sessionUseCase) Me(ctx context.Context) (*domain.User, error) {
	user, err := s.authRepo.Me(ctx)
	if err != nil {
		return nil, err
	}

	// 伺服器資料為準，同步本地副本
	s.mu.Lock()
	if s.session != nil {
		s.session.User = *user
	}
	s.mu.Unlock()
	return user, nil
}

// ForgotPassword 寄送重設信；email 格式先在本地檢查
func (s *sessionUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return errprocess.SetKind(errprocess.KindValidation, "email is required", nil)
	}
	return s.authRepo.ForgotPassword(ctx, email)
}

// ResetPassword 新密碼沿用註冊的強度規則
func (s *sessionUseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" {
		return errprocess.SetKind(errprocess.KindValidation, "reset token is required", nil)
	}
	if err := encrypt.ValidatePasswordStrength(newPassword); err != nil {
		return errprocess.SetKind(errprocess.KindValidation, err.Error(), err)
	}
	return s.authRepo.ResetPassword(ctx, resetToken, newPassword)
}

func (s *sessionUseCase) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.IsExpired() {
		return nil
	}
	return s.session
}

func (s *sessionUseCase) Token() string {
	if session := s.Current(); session != nil {
		return session.Token
	}
	return ""
}

func (s *sessionUseCase) Claims() *token.Claims {
	session := s.Current()
	if session == nil {
		return nil
	}
	claims, err := token.ParseClaims(session.Token)
	if err != nil {
		logger.Log.Debug("token parse failed", zap.Error(err))
		return nil
	}
	return claims
}
