package auth

import (
	"github.com/gofiber/fiber/v2"

	tokenService "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/service"
)

// Locals keys must stay consistent across middleware and controllers.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "user_role"
)

func StoreClaimsToLocals(c *fiber.Ctx, claims *tokenService.AccessClaims) {
	c.Locals(LocUserID, claims.ID)
	c.Locals(LocUserName, claims.Name)
	c.Locals(LocUserRole, claims.Role)
}

func GetUserID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserID).(string)
	return v
}

func GetUserName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserName).(string)
	return v
}

func GetUserRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserRole).(string)
	return v
}
