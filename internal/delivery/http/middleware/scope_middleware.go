package middleware

import (
	"net/http"
	"slices"

	"slot-availability/pkg/response"
)

// RequireScope creates a middleware that checks the token grants scope.
// Scopes are read from context (set by AuthMiddleware from JWT claims)
func RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, ok := GetScopesFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Scope information not found")
				return
			}

			if !slices.Contains(scopes, scope) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
