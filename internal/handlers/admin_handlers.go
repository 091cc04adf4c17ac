package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/middleware"
)

// AdminGetUser looks up any directory record. Requires the caller's stored
// profile to carry the admin role.
func (h *Handler) AdminGetUser(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	if !caller.Stored() || !caller.User.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
	u, err := h.users.Profile(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}
