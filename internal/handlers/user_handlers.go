package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/middleware"
	"github.com/ParthDhengle/ClipHub/internal/models"
)

func (h *Handler) Me(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	u, err := h.users.Profile(c.UserContext(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *Handler) UpdateMe(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	u, err := h.users.UpdateProfile(c.UserContext(), caller.ID, &upd)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

type preferencesReq struct {
	Preferences []string `json:"preferences"`
}

func (h *Handler) GetPreferences(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	prefs, err := h.users.Preferences(c.UserContext(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(prefs)
}

func (h *Handler) SetPreferences(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	var req preferencesReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	prefs, err := h.users.SetPreferences(c.UserContext(), caller.ID, req.Preferences)
	if err != nil {
		return err
	}
	return c.JSON(prefs)
}
