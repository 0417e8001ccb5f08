package auth

import "draftsmith/internal/domain/models"

// TokenVerifier defines the interface for JWT token verification.
// This abstraction keeps the middleware agnostic to whether tokens are
// checked against a shared secret or a JWKS endpoint.
type TokenVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.AccessClaims, error)

	// Close releases any resources held by the verifier (e.g., HTTP
	// connections for JWKS refresh).
	Close() error
}
