package domain

import (
	"fmt"
	"strings"
	"time"

	"gigconnect_client/pkg/encrypt"
)

// User 登入後伺服器回傳的帳號資料
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	IsBanned   bool   `json:"is_banned"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Session 用來表示一次已登入的會話
type Session struct {
	Token     string    `json:"Token"`
	User      User      `json:"User"`
	CreatedAt time.Time `json:"CreatedAt"`
	ExpiredAt time.Time `json:"ExpiredAt"`
}

// IsExpired 檢查 Session 是否已過期
func (s *Session) IsExpired() bool {
	return !s.ExpiredAt.IsZero() && time.Now().After(s.ExpiredAt)
}

// SignupParams registration input, validated client-side before any request
type SignupParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate 欄位檢查；server 端會再驗一次，這裡只是提前擋掉
func (p *SignupParams) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if p.Role != "buyer" && p.Role != "seller" {
		return fmt.Errorf("role must be buyer or seller")
	}
	if err := encrypt.ValidatePasswordStrength(p.Password); err != nil {
		return fmt.Errorf("%w: %v", encrypt.ErrWeakPassword, err)
	}
	return nil
}

// Credentials login input
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse login / signup response payload
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
