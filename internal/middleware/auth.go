// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/auth"
	"github.com/pelycan/api/internal/model"
)

type contextKey string

const identityKey = contextKey("pelycan_identity")

// Identity is the validated caller attached to the request context.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  model.UserRole
	Name  string
}

// UserLookup is the subset of the user repository the middleware needs to
// confirm the token subject still exists.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// AuthMiddleware validates the bearer token and re-loads the user so revoked
// accounts and role changes take effect immediately, not at token expiry.
func AuthMiddleware(tokenManager *auth.TokenManager, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "Token d'authentification manquant")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Format de token invalide")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Token invalide")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Token invalide")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Utilisateur non trouvé")
				return
			}

			identity := &Identity{
				ID:    user.ID,
				Email: user.Email,
				Role:  user.Role,
				Name:  user.FullName(),
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(roles ...model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				respondWithError(w, http.StatusUnauthorized, "Non authentifié")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respondWithError(w, http.StatusForbidden, "Accès non autorisé pour ce rôle")
		})
	}
}

// IdentityFromContext returns the authenticated caller, or nil outside the
// auth middleware.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
