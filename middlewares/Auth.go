package middlewares

import (
	"os"
	"sync"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"wealthtracker.com/types"
)

var (
	authOnce    sync.Once
	authHandler fiber.Handler
)

// Auth validates a bearer token on mutating endpoints when JWT_SECRET is
// set. Without a secret the tracker runs open, which is the single-tenant
// default. The handler is built once, on first use, so the secret loaded
// from .env at startup is picked up exactly once.
func Auth(c *fiber.Ctx) error {
	authOnce.Do(func() {
		authHandler = newAuthHandler(os.Getenv("JWT_SECRET"))
	})
	return authHandler(c)
}

func newAuthHandler(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return jwtware.New(jwtware.Config{
		SigningKey:     jwtware.SigningKey{Key: []byte(secret), JWTAlg: "HS256"},
		SuccessHandler: jwtSuccessHandler,
		ErrorHandler:   jwtErrorHandler,
	})
}

func jwtSuccessHandler(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		c.Locals("claims", claims)
	}
	return c.Next()
}

func jwtErrorHandler(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.Response{
		Success: false,
		Error:   "Unauthorized - " + err.Error(),
	})
}
