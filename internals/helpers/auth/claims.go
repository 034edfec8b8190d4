package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claims are stored in c.Locals by the auth middleware. These helpers read
// them back out with uniform error handling.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user ID in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role in token")
	}
	return role, nil
}

func GetEmailFromToken(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}
