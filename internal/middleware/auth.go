package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/myhost-cloud/myhost/internal/auth"
)

// Locals keys populated by RequireAuth for downstream handlers.
const (
	LocalsUserID    = "user_id"
	LocalsUserEmail = "user_email"
	LocalsIsAdmin   = "is_admin"
)

// RequireAuth validates the bearer token and injects the caller's identity
// into request locals. Missing token → 401, invalid or expired token → 403.
// Rejection short-circuits the request before any protected handler runs.
func RequireAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "Access token required")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(http.StatusForbidden, "Invalid or expired token")
		}
		userID, err := claims.UserID()
		if err != nil {
			return fiber.NewError(http.StatusForbidden, "Invalid or expired token")
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsUserEmail, claims.Email)
		c.Locals(LocalsIsAdmin, claims.Admin)
		return c.Next()
	}
}

// RequireAdmin gates admin-only routes on the token's admin claim. Must run
// after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(LocalsIsAdmin).(bool); !isAdmin {
			return fiber.NewError(http.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// UserID extracts the authenticated user id placed by RequireAuth.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalsUserID).(int64)
	return id, ok
}
