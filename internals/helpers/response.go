package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Success writes the {"success": true, ...} envelope the course surface uses.
func Success(c *fiber.Ctx, data fiber.Map) error {
	payload := fiber.Map{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	return c.JSON(payload)
}

// Error writes {"success": false, "msg": ...} with the given status code.
func Error(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"msg":     msg,
	})
}

// AuthMessage is the bare {"msg": ...} envelope of the signup/login routes.
func AuthMessage(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"msg": msg})
}
