package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleType set user role
type RoleType string

const (
	// RoleBuyer may start new conversation threads
	RoleBuyer RoleType = "buyer"
	// RoleSeller is the reply-only role, can answer but not initiate
	RoleSeller RoleType = "seller"
	// RoleAdmin is the admin role
	RoleAdmin RoleType = "admin"
)

// Claims structure for custom claims in JWT
//
// UserID 不能綁 "sub" tag，否則會遮蔽 RegisteredClaims.Subject，
// 只帶 registered sub 的 token 會解不出身分
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseClaims 解析 bearer token 的 claims
//
// The backend signs tokens with its own secret; the client never holds it,
// so the signature is not verified here. The server stays authoritative —
// these claims only feed local display and gating hints.
func ParseClaims(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		if claims.Subject == "" {
			return nil, errors.New("token carries no identity")
		}
		claims.UserID = claims.Subject
	}
	return claims, nil
}

// Expired check token expiry from claims; zero expiry means unknown, treat as live
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}

// StripBearer removes the "Bearer " scheme prefix when present.
func StripBearer(t string) string {
	if len(t) >= 7 && t[:7] == "Bearer " {
		return t[7:]
	}
	return t
}
