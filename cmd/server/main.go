package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/bootstrap"
	"github.com/ParthDhengle/ClipHub/internal/server"
)

func main() {
	ctx := context.Background()

	app, cleanup, err := bootstrap.Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	logger := app.Logger

	srv := server.New(app.Config, app.Handler, app.Resolver, logger)

	go func() {
		addr := fmt.Sprintf(":%d", app.Config.App.Port)
		logger.Info("starting server", zap.String("addr", addr))
		if err := srv.Listen(addr); err != nil {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	_ = srv.ShutdownWithContext(shutdownCtx)
	cleanup(shutdownCtx)
	logger.Info("shutdown completed")
}
