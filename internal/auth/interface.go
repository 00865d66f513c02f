package auth

import "sitenav/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// The middleware only depends on this, so tests can swap in a fake.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or badly signed.
	VerifyToken(tokenString string) (*models.SiteClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
