package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rss-summarizer/api/handlers"
	"rss-summarizer/api/router"
	"rss-summarizer/config"
	"rss-summarizer/internal/app"
	"rss-summarizer/internal/logger"
)

// @title           RSS Summarizer API
// @version         1.0
// @description     Summarize and classify the newest posts of an RSS or Atom feed
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := app.NewSummaryService(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("failed to build summary service: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	handler, err := router.NewHandler(router.Deps{
		Runner: svc,
		Page: handlers.PageOptions{
			DefaultURL:   cfg.Feed.DefaultURL,
			ShowFailures: cfg.Presenter.ShowFailures,
		},
	}, cfg.Server.CORSAllowedOrigins)
	if err != nil {
		logger.Log.Errorf("failed to build router: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
	logger.Log.Info("server stopped")
}
