package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/middleware"
	"github.com/ParthDhengle/ClipHub/internal/models"
)

func (h *Handler) RecordAnalytics(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	var draft models.AnalyticsDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	rec := &models.Analytics{
		OwnerID:        caller.ID,
		MediaID:        draft.MediaID,
		Views:          draft.Views,
		Downloads:      draft.Downloads,
		Likes:          draft.Likes,
		EngagementRate: draft.EngagementRate,
		ApprovalRate:   draft.ApprovalRate,
		QualityScore:   draft.QualityScore,
	}
	if err := h.analytics.Create(c.UserContext(), rec); err != nil {
		return err
	}
	return c.JSON(rec)
}
