package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", 0)

	token, err := svc.Issue(map[string]any{"email": "a@x.com", "role": "rider"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email())
	assert.Equal(t, "rider", claims.Role())

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, DefaultTTL.Seconds(), exp-iat)
}

func TestVerify_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", DefaultTTL)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(4*time.Hour + 59*time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err, "token must be valid within 5 hours")

	svc.now = func() time.Time { return issuedAt.Add(5*time.Hour + time.Second) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token must expire after 5 hours")
}

func TestIssue_OverridesPayloadExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{"email": "a@x.com", "exp": 1})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Greater(t, claims["exp"].(float64), float64(time.Now().Unix()))
}

func TestVerify_Rejects(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	foreign, err := other.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", foreign},
		{"missing exp", noExp},
		{"unexpected algorithm", hs512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
