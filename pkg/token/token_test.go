package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	str, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-secret"))
	assert.NoError(t, err)
	return str
}

func TestParseClaimsWithoutServerSecret(t *testing.T) {
	raw := signedToken(t, Claims{
		UserID: "u-1",
		Role:   string(RoleSeller),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseClaims(raw)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, string(RoleSeller), claims.Role)
	assert.False(t, claims.Expired(time.Now()))
}

func TestParseClaimsFallsBackToSubject(t *testing.T) {
	// 後端若把身分放在 registered "sub" 而不是自訂欄位，也要解得出來
	raw := signedToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-2"},
	})

	claims, err := ParseClaims(raw)
	assert.NoError(t, err)
	if assert.NotNil(t, claims) {
		assert.Equal(t, "u-2", claims.UserID)
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestParseClaimsRejectsAnonymousToken(t *testing.T) {
	raw := signedToken(t, Claims{})
	_, err := ParseClaims(raw)
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	expired := Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}}
	assert.True(t, expired.Expired(now))

	noExpiry := Claims{}
	assert.False(t, noExpiry.Expired(now), "沒有 exp 視為有效")
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc", StripBearer("Bearer abc"))
	assert.Equal(t, "abc", StripBearer("abc"))
}
