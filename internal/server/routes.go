package server

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/config"
	"github.com/ParthDhengle/ClipHub/internal/handlers"
	"github.com/ParthDhengle/ClipHub/internal/metrics"
	"github.com/ParthDhengle/ClipHub/internal/middleware"
)

func setupRoutes(app *fiber.App, h *handlers.Handler, resolver *auth.Resolver, cfg *config.Config) {
	required := middleware.Required(resolver)
	optional := middleware.Optional(resolver)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// local upload buckets, served back at /{photos,videos,music}/<filename>
	for _, bucket := range []string{"photos", "videos", "music"} {
		app.Static("/"+bucket, filepath.Join(cfg.Storage.UploadDir, bucket))
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", h.Signup)
	authGroup.Post("/login", h.Login)

	users := api.Group("/users")
	users.Get("/me", required, h.Me)
	users.Put("/me", required, h.UpdateMe)

	api.Get("/user/preferences", required, h.GetPreferences)
	api.Post("/user/preferences", required, h.SetPreferences)

	media := api.Group("/media")
	media.Get("/list", h.ListLocalMedia)
	media.Post("/upload", required, h.UploadLocalMedia)
	media.Post("/", required, h.CreateMedia)
	media.Get("/", required, h.ListMedia)
	media.Get("/:id", optional, h.GetMedia)
	media.Post("/:id/like", required, h.Like)
	media.Post("/:id/unlike", required, h.Unlike)
	media.Post("/:id/view", required, h.View)
	media.Post("/:id/download", required, h.Download)

	api.Post("/upload/media", required, h.UploadRemoteMedia)

	collections := api.Group("/collections")
	collections.Post("/", required, h.CreateCollection)
	collections.Get("/:id", optional, h.GetCollection)

	api.Post("/analytics", required, h.RecordAnalytics)
	api.Get("/stats/leaderboard", h.Leaderboard)

	admin := api.Group("/admin", required)
	admin.Get("/users/:id", h.AdminGetUser)
}
