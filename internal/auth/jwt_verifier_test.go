package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav/internal/domain"
	"sitenav/internal/domain/models"
)

func newTestVerifier(t *testing.T) (*SiteJWTVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v := &SiteJWTVerifier{
		keyFunc: func(*jwt.Token) (any, error) { return &key.PublicKey, nil },
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return v, key
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims models.SiteClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() models.SiteClaims {
	return models.SiteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:        "authenticated",
		AppMetadata: map[string]any{"role": "admin"},
	}
}

func TestVerifyToken_Valid(t *testing.T) {
	v, key := newTestVerifier(t)

	claims, err := v.VerifyToken(sign(t, jwt.SigningMethodRS256, key, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.GetUserID())
	assert.Equal(t, "admin", claims.SiteRole())
}

func TestVerifyToken_Rejects(t *testing.T) {
	v, key := newTestVerifier(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noSubject := validClaims()
	noSubject.Subject = ""

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", sign(t, jwt.SigningMethodRS256, key, expired)},
		{"missing subject", sign(t, jwt.SigningMethodRS256, key, noSubject)},
		{"missing expiry", sign(t, jwt.SigningMethodRS256, key, noExpiry)},
		{"hmac algorithm", sign(t, jwt.SigningMethodHS256, []byte("secret"), validClaims())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.VerifyToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestSiteRole_FallsBackToRoleClaim(t *testing.T) {
	claims := &models.SiteClaims{Role: "editor"}
	assert.Equal(t, "editor", claims.SiteRole())
}

func TestNewJWTVerifier_EmptyURL(t *testing.T) {
	_, err := NewJWTVerifier("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
