package router

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/middleware"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/web"
)

const (
	APIPrefix     = "/api/v1"
	VideoInfoPath = APIPrefix + "/video-info"
	DownloadPath  = APIPrefix + "/download"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler, formHandler *handlers.FormHandler) (*Router, error) {
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	engine.SetHTMLTemplate(templates)

	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))

	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/", formHandler.Index)

	api := engine.Group(APIPrefix)
	{
		api.GET("/video-info", videoHandler.GetVideoInfo) // /api/v1/video-info
		api.GET("/download", videoHandler.Download)       // /api/v1/download
	}

	return &Router{
		engine: engine,
		config: cfg,
	}, nil
}

// Server returns an http.Server for the router. No write timeout is set so
// long downloads are not cut off.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(r.config.Server.Host, r.config.Server.Port),
		Handler:           r.engine,
		ReadHeaderTimeout: r.config.Server.ReadHeaderTimeout,
		IdleTimeout:       r.config.Server.IdleTimeout,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// PageData is what the form needs to reach the API.
func PageData(title string) web.PageData {
	return web.PageData{
		Title:         title,
		VideoInfoPath: VideoInfoPath,
		DownloadPath:  DownloadPath,
	}
}
