package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"tourismportal/internal/auth"
	"tourismportal/internal/db"
	"tourismportal/internal/models"
)

// UserFromContext returns the authenticated user stored by the middleware,
// or nil when the request is anonymous.
func UserFromContext(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// AuthMiddleware handles user authentication via Bearer tokens.
type AuthMiddleware struct {
	jwt        *auth.JWTService
	tokenStore *auth.TokenStore
	db         *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(jwtService *auth.JWTService, tokenStore *auth.TokenStore, database *db.DB) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtService, tokenStore: tokenStore, db: database}
}

// bearerToken extracts the token from an Authorization header value.
// Returns "" when the header is missing or not a Bearer scheme.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// authenticate resolves the request's Bearer token to a user, or nil.
func (m *AuthMiddleware) authenticate(c fiber.Ctx) error {
	token := bearerToken(c.Get("Authorization"))
	if token == "" {
		return fiber.ErrUnauthorized
	}

	claims, err := m.jwt.ValidateAccessToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	if m.tokenStore != nil && m.tokenStore.IsAccessTokenBlacklisted(claims.ID) {
		return fiber.ErrUnauthorized
	}

	user, err := m.db.GetUserByID(c.Context(), claims.UserID)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	c.Locals("user", user)
	c.Locals("token_claims", claims)
	return nil
}

// RequireAuth ensures the request carries a valid access token.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if err := m.authenticate(c); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return c.Next()
}

// RequireAdmin ensures the authenticated user has the admin role.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	if err := m.authenticate(c); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	user := UserFromContext(c)
	if user == nil || !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
	return c.Next()
}

// OptionalAuth loads the user if a valid token is present, but doesn't
// require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	m.authenticate(c) // best effort
	return c.Next()
}
