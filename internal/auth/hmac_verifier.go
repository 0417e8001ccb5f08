package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
)

// HMACVerifier implements TokenVerifier against a shared HMAC secret.
// This is the mode used when the session service signs its own tokens.
type HMACVerifier struct {
	secret []byte
	logger *slog.Logger
}

// NewHMACVerifier creates a shared-secret verifier.
func NewHMACVerifier(secret string, logger *slog.Logger) (TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	logger.Info("HMAC token verifier initialized")

	return &HMACVerifier{secret: []byte(secret), logger: logger}, nil
}

// VerifyToken validates a JWT token and extracts the access claims.
func (v *HMACVerifier) VerifyToken(tokenString string) (*models.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op; the verifier holds no external resources.
func (v *HMACVerifier) Close() error {
	return nil
}
