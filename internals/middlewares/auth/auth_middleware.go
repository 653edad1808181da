package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
	tokenService "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/service"
	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the decoded identity
// (role, name, id) in Locals for downstream handlers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Authentication token missing.")
		}

		claims, err := tokenService.ParseAccessToken(configs.JWTSecret, tokenString)
		if err != nil {
			log.Printf("[WARN] token rejected: %v", err)
			return helper.Error(c, fiber.StatusForbidden, "Invalid or expired token. Please log in again.")
		}

		StoreClaimsToLocals(c, claims)
		return c.Next()
	}
}
