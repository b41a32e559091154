package middleware

import (
	"github.com/gitmindapp/gitmind-backend/internal/config"
	"github.com/gitmindapp/gitmind-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// ClerkProtected validates Clerk session tokens against the instance JWKS.
func ClerkProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		JWKSetURLs: []string{cfg.ClerkJWKSURL},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		},
	})
}
