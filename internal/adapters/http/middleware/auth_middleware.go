package middleware

import (
	"strings"

	"scholarchain/internal/config"
	"scholarchain/internal/pkg/jwt"
	"scholarchain/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the wallet session token and puts the opaque
// wallet address and role into the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sessionToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			sessionToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if sessionToken == "" {
			return response.Unauthorized(c, "Session token required")
		}

		claims, err := jwt.ValidateSessionToken(sessionToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Session token expired")
			}
			return response.Unauthorized(c, "Invalid session token")
		}

		c.Locals("walletAddress", claims.Address)
		c.Locals("walletRole", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("walletRole").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// ProviderOnly middleware allows only the provider role
func ProviderOnly() fiber.Handler {
	return RoleMiddleware("provider")
}

// ApplicantOnly middleware allows only the applicant role
func ApplicantOnly() fiber.Handler {
	return RoleMiddleware("applicant")
}
