package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/utils"
)

const operatorContextKey = "currentOperator"

// AuthMiddleware validates JWT tokens and loads the operator name into context.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		username, err := utils.ParseToken(secret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(operatorContextKey, username)
		return c.Next()
	}
}

// CurrentOperator returns the authenticated operator name.
func CurrentOperator(c *fiber.Ctx) (string, bool) {
	name, ok := c.Locals(operatorContextKey).(string)
	return name, ok && name != ""
}
