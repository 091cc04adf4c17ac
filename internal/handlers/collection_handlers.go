package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/middleware"
	"github.com/ParthDhengle/ClipHub/internal/models"
)

func (h *Handler) CreateCollection(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	var draft models.CollectionDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if draft.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title required")
	}
	col := &models.Collection{
		OwnerID:   caller.ID,
		Title:     draft.Title,
		ItemCount: draft.ItemCount,
		MediaIDs:  draft.MediaIDs,
	}
	if err := h.collections.Create(c.UserContext(), col); err != nil {
		return err
	}
	return c.JSON(col)
}

func (h *Handler) GetCollection(c *fiber.Ctx) error {
	col, err := h.collections.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(col)
}
