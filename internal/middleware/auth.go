package middleware

import (
	"net/http"
	"strings"

	"draftsmith/internal/auth"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/httputil"
)

// AuthMiddleware verifies the bearer token on every request and attaches
// the resulting actor to the context. The health endpoint is exempt so
// load balancers can probe without credentials.
func AuthMiddleware(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" || tokenString == authHeader {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			actor := models.Actor{
				UserID:   claims.GetUserID(),
				Username: claims.Username,
			}
			next.ServeHTTP(w, httputil.WithActor(r, actor))
		})
	}
}
