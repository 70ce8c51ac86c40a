package middleware

import (
	"strings"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/config"
	"barangay-hub/internal/pkg/jwt"
	"barangay-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer access token issued at login
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// AdminOnly restricts a route to admin accounts. Must run after
// AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		if role != models.RoleAdmin {
			return response.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}
