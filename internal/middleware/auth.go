package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/utils"
)

const callerKey = "caller"

// Required rejects the request with 401 unless the bearer credential
// resolves to a caller.
func Required(r *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := r.Resolve(c.UserContext(), bearer(c))
		if err != nil {
			return utils.JSONError(c, fiber.StatusUnauthorized, "authentication required")
		}
		c.Locals(callerKey, caller)
		return c.Next()
	}
}

// Optional resolves the caller when a credential is present and valid, and
// lets the request through anonymously otherwise.
func Optional(r *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := bearer(c); tok != "" {
			if caller, err := r.Resolve(c.UserContext(), tok); err == nil {
				c.Locals(callerKey, caller)
			}
		}
		return c.Next()
	}
}

// CallerFrom returns the resolved caller, or nil on anonymous requests.
func CallerFrom(c *fiber.Ctx) *auth.Caller {
	caller, _ := c.Locals(callerKey).(*auth.Caller)
	return caller
}

func bearer(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
