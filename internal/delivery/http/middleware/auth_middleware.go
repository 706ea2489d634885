package middleware

import (
	"context"
	"net/http"
	"strings"

	"slot-availability/internal/service"
	"slot-availability/pkg/jwt"
	"slot-availability/pkg/response"
)

type contextKey string

const (
	UserKey      contextKey = "user"
	GroupKey     contextKey = "group"
	ScopesKey    contextKey = "scopes"
	TokenIDKey   contextKey = "token_id"
	RequestIDKey contextKey = "request_id"
)

type AuthMiddleware struct {
	jwtService      *jwt.JWTService
	revocationStore service.TokenRevocationStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, revocationStore service.TokenRevocationStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:      jwtService,
		revocationStore: revocationStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		revoked, err := m.revocationStore.IsRevoked(r.Context(), claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if revoked {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, claims.User)
		ctx = context.WithValue(ctx, GroupKey, claims.Group)
		ctx = context.WithValue(ctx, ScopesKey, claims.Scopes)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user name from context
func GetUserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(UserKey).(string)
	return user, ok
}

// GetGroupFromContext extracts the user's provider group from context
func GetGroupFromContext(ctx context.Context) (string, bool) {
	group, ok := ctx.Value(GroupKey).(string)
	return group, ok
}

// GetScopesFromContext extracts granted scopes from context
func GetScopesFromContext(ctx context.Context) ([]string, bool) {
	scopes, ok := ctx.Value(ScopesKey).([]string)
	return scopes, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
