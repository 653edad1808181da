package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
)

// RoleMiddlewareWithCustomError gates a route on the authenticated role.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		if role == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.Error(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is a shortcut for the common case.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
