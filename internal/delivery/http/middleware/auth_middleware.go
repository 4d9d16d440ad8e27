package middleware

import (
	"context"
	"net/http"
	"strings"

	"neuroclinic/config"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/pkg/jwt"
	"neuroclinic/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	mode       config.Mode
}

// NewAuthMiddleware authenticates requests for mode. In development mode every
// request runs as entity.DeveloperPrincipal and no token is read.
func NewAuthMiddleware(jwtService *jwt.JWTService, mode config.Mode) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		mode:       mode,
	}
}

func (m *AuthMiddleware) Mode() config.Mode {
	return m.mode
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode.IsDevelopment() {
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), entity.DeveloperPrincipal)))
			return
		}

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

		userID, err := claims.UserID()
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		principal := entity.Principal{
			ID:       userID,
			Email:    claims.Email,
			FullName: claims.UserMetadata.FullName,
			Role:     entity.Role(claims.UserMetadata.Role),
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// WithPrincipal stores the caller in ctx.
func WithPrincipal(ctx context.Context, p entity.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// GetPrincipalFromContext extracts the caller from context
func GetPrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(entity.Principal)
	return p, ok
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return p.ID, true
}
