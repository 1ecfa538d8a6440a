package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hireline/hireline/pkg/kernel"
)

const (
	localUserID = "auth_user_id"
	localRole   = "auth_user_role"
)

// AuthContext is the request-scoped identity populated by Middleware.
type AuthContext struct {
	UserID kernel.UserID
	Role   kernel.ActorRole
}

// Middleware validates the Bearer token and stores the resolved identity in
// the request context.
func Middleware(tokenService *JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("header", "expected Bearer scheme")
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, claims.Role)

		return c.Next()
	}
}

// GetAuthContext extracts the authenticated identity from the request, if
// present.
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	userID, ok := c.Locals(localUserID).(kernel.UserID)
	if !ok || userID.IsEmpty() {
		return AuthContext{}, false
	}

	role, ok := c.Locals(localRole).(kernel.ActorRole)
	if !ok {
		return AuthContext{}, false
	}

	return AuthContext{UserID: userID, Role: role}, true
}
