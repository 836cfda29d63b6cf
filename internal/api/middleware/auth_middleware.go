package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/postcal/postcal/configs"
	"github.com/postcal/postcal/internal/service"
	"github.com/postcal/postcal/pkg/utils"
)

type AuthMiddleware struct {
	s   service.ApiKeyService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, service service.ApiKeyService) *AuthMiddleware {
	return &AuthMiddleware{s: service, cfg: cfg}
}

func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		apiKey := c.Query("api_key")

		if tokenString == "" && apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Keys or cookies",
			})
		}

		if apiKey != "" {
			if err := m.s.Validate(c.Context(), apiKey); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
		} else if tokenString != "" {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err != nil {
				c.Cookie(&fiber.Cookie{
					Name:   m.cfg.CookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1, // Delete cookie
				})

				log.Printf("Token validation failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}

			c.Locals("subject", claims.Subject)
		}
		return c.Next()
	}
}
