package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the bearer token from the Authorization header,
// or "" when the header is missing or malformed.
func GetRawAccessToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) && strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}
