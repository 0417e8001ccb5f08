package auth

import (
	"errors"
	"log/slog"

	"draftsmith/internal/config"
)

// NewVerifier picks the token verifier from config: a JWKS endpoint when
// configured, otherwise the shared HMAC secret.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (TokenVerifier, error) {
	if cfg.AuthJWKSURL != "" {
		return NewJWKSVerifier(cfg.AuthJWKSURL, logger)
	}
	if cfg.AuthJWTSecret != "" {
		return NewHMACVerifier(cfg.AuthJWTSecret, logger)
	}
	return nil, errors.New("no auth configured: set AUTH_JWKS_URL or AUTH_JWT_SECRET")
}
