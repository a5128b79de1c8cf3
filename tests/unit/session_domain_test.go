package unit

import (
	"testing"
	"time"

	"gigconnect_client/internal/session/domain"

	"github.com/stretchr/testify/assert"
)

func TestSignupPasswordRules(t *testing.T) {
	params := domain.SignupParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecretPwd",
		Role:     "buyer",
	}
	assert.True(t, params.Validate() == nil, "should accept a strong password")

	params.Password = "short1!"
	assert.False(t, params.Validate() == nil, "should reject a short password")

	params.Password = "alllowercase1!"
	assert.False(t, params.Validate() == nil, "should reject without uppercase")
}

func TestSessionExpiration(t *testing.T) {
	session := domain.Session{
		Token:     "abcd1234",
		CreatedAt: time.Now(),
		ExpiredAt: time.Now().Add(-1 * time.Minute), // 已經過期
	}
	assert.True(t, session.IsExpired(), "session should be expired")

	open := domain.Session{Token: "abcd1234", CreatedAt: time.Now()}
	assert.False(t, open.IsExpired(), "zero expiry means unknown, treat as live")
}
