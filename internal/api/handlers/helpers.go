package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDFromCtx reads the authenticated user id the auth middleware put
// into request locals.
func userIDFromCtx(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user identity")
	}
	return id, nil
}
