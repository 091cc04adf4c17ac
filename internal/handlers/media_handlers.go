package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/middleware"
	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

func (h *Handler) CreateMedia(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	var draft models.MediaDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	m, err := h.media.CreateRecord(c.UserContext(), caller.ID, &draft)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (h *Handler) GetMedia(c *fiber.Ctx) error {
	m, err := h.media.GetRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (h *Handler) ListMedia(c *fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	items, err := h.media.ListByOwner(c.UserContext(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *Handler) Like(c *fiber.Ctx) error {
	return h.adjust(c, repository.CounterLikes, +1)
}

func (h *Handler) Unlike(c *fiber.Ctx) error {
	return h.adjust(c, repository.CounterLikes, -1)
}

func (h *Handler) View(c *fiber.Ctx) error {
	return h.adjust(c, repository.CounterViews, +1)
}

func (h *Handler) Download(c *fiber.Ctx) error {
	return h.adjust(c, repository.CounterDownloads, +1)
}

func (h *Handler) adjust(c *fiber.Ctx, counter repository.Counter, delta int64) error {
	if err := h.media.Adjust(c.UserContext(), c.Params("id"), counter, delta); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "ok"})
}

// ListLocalMedia lists the filenames stored under one local type bucket.
func (h *Handler) ListLocalMedia(c *fiber.Ctx) error {
	bucket := c.Query("media_type")
	files, err := h.media.ListLocal(bucket)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "media_type must be photos, videos or music")
	}
	return c.JSON(fiber.Map{"files": files})
}

// UploadLocalMedia saves a multipart upload into the local library, served
// back at /{photos,videos,music}/{filename}.
func (h *Handler) UploadLocalMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file missing")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open file")
	}
	defer f.Close()

	ct := fileHeader.Header.Get(fiber.HeaderContentType)
	if ct == "" {
		head := make([]byte, 512)
		n, _ := f.Read(head)
		ct = http.DetectContentType(head[:n])
		if _, err := f.Seek(0, 0); err != nil {
			return err
		}
	}

	url, err := h.media.SaveLocal(fileHeader.Filename, ct, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":      url,
		"filename": fileHeader.Filename,
	})
}

// UploadRemoteMedia pushes a multipart upload through the CDN pipeline and
// returns the public URL plus derived thumbnail URL.
func (h *Handler) UploadRemoteMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file missing")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open file")
	}
	defer f.Close()

	ct := fileHeader.Header.Get(fiber.HeaderContentType)
	result, err := h.media.UploadRemote(c.UserContext(), f, ct)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) Leaderboard(c *fiber.Ctx) error {
	stats, err := h.media.Leaderboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
