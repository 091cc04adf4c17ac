package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/utils"
)

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginReq struct {
	Token string `json:"token"`
}

// Signup creates the provider account plus directory record and returns the
// profile with a session token.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	user, token, err := h.auth.Signup(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"user":         user,
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Login exchanges a provider-issued token for a locally issued session
// token, creating the directory record if this identity is new.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "token required")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
