package http

import (
	"net/http"
	"strings"

	"contribution-rewards-backend/internal/config"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/security"
	"contribution-rewards-backend/internal/service"

	"github.com/gorilla/mux"
)

type authMiddleware struct {
	tokenManager security.TokenManager
}

func newAuthMiddleware(tm security.TokenManager) *authMiddleware {
	return &authMiddleware{tokenManager: tm}
}

// Handler validates the bearer token on every non-public route and stores
// the caller's identity in the request context.
func (a *authMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.SecurityAuthenticated
		if route := mux.CurrentRoute(r); route != nil {
			level = config.GetSecurityLevel(route.GetName())
		}
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := extractToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "Authorization token is not provided")
			return
		}
		claims, err := a.tokenManager.ValidateToken(token)
		if err != nil {
			logger.DebugContext(r.Context(), "Rejected bearer token", "error", err)
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := withIdentity(r.Context(), service.Identity{
			UserID:    claims.UserID(),
			Email:     claims.Email,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}
	return strings.TrimSpace(token)
}
