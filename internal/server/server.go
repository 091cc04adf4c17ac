package server

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/config"
	"github.com/ParthDhengle/ClipHub/internal/handlers"
	"github.com/ParthDhengle/ClipHub/internal/identity"
	"github.com/ParthDhengle/ClipHub/internal/metrics"
	"github.com/ParthDhengle/ClipHub/internal/repository"
	"github.com/ParthDhengle/ClipHub/internal/services"
	"github.com/ParthDhengle/ClipHub/internal/storage"
)

// New initializes the Fiber application with config, middlewares, and routes.
func New(cfg *config.Config, h *handlers.Handler, resolver *auth.Resolver, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes) + (1 << 20),
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New())
	if origins := cfg.Origins(); len(origins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(origins, ","),
			AllowCredentials: true,
		}))
	} else {
		app.Use(cors.New())
	}
	app.Use(zapLoggerMiddleware(logger))
	app.Use(metrics.Middleware())

	setupRoutes(app, h, resolver, cfg)
	return app
}

// errorHandler is the single boundary mapping service errors onto the HTTP
// taxonomy. Upstream causes are logged but never leaked to the caller.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authentication token"})
		case errors.Is(err, repository.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		case errors.Is(err, repository.ErrMediaNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "media not found"})
		case errors.Is(err, repository.ErrCollectionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "collection not found"})
		case errors.Is(err, identity.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email already registered"})
		case errors.Is(err, services.ErrInvalidMediaType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid media type"})
		case errors.Is(err, storage.ErrUnsupportedType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported media type"})
		case errors.Is(err, storage.ErrTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "file too large"})
		}

		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// zapLoggerMiddleware logs incoming HTTP requests.
func zapLoggerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Debug("http request errored", append(fields, zap.Error(err))...)
			return err
		}
		logger.Info("http request", fields...)
		return nil
	}
}
