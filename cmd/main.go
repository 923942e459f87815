// Package main provides the entry point for the ytgrab video download service.
// @title ytgrab API
// @version 1.0
// @description A Go web service that lists the formats of a YouTube video and relays the chosen one as a download.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/denisAlshanov/ytgrab/docs" // Import for swagger docs
	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/router"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/services/downloader"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

const (
	version         = "1.0.0"
	pageTitle       = "YouTube Video Downloader"
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting ytgrab service")

	youtubeClient, err := youtube.NewClient(&cfg.YouTube)
	if err != nil {
		logger.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	downloaderService := downloader.NewDownloader(youtubeClient, &cfg.Download)

	videoHandler := handlers.NewVideoHandler(downloaderService)
	healthHandler := handlers.NewHealthHandler(youtubeClient, version)
	formHandler := handlers.NewFormHandler(router.PageData(pageTitle))

	r, err := router.NewRouter(cfg, videoHandler, healthHandler, formHandler)
	if err != nil {
		logger.Fatalf("Failed to initialize router: %v", err)
	}
	srv := r.Server()

	go func() {
		logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server shutdown complete")
}
