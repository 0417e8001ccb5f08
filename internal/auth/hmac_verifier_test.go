package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, secret string, claims *models.AccessClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestHMACVerifierAcceptsValidToken(t *testing.T) {
	verifier, err := NewHMACVerifier("test-secret", testLogger())
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	defer verifier.Close()

	signed := signToken(t, "test-secret", &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "alice",
	})

	claims, err := verifier.VerifyToken(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.GetUserID() != "user-123" {
		t.Errorf("user id = %q", claims.GetUserID())
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q", claims.Username)
	}
}

func TestHMACVerifierRejections(t *testing.T) {
	verifier, err := NewHMACVerifier("test-secret", testLogger())
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", &models.AccessClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-123",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
		},
		{
			name: "expired",
			token: signToken(t, "test-secret", &models.AccessClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-123",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
		},
		{
			name: "missing subject",
			token: signToken(t, "test-secret", &models.AccessClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := verifier.VerifyToken(tt.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("expected unauthorized, got %v", err)
			}
		})
	}
}

func TestHMACVerifierRequiresSecret(t *testing.T) {
	if _, err := NewHMACVerifier("", testLogger()); err == nil {
		t.Error("expected error for empty secret")
	}
}
