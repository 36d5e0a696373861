package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"order-photos-backend/internal/config"
	"order-photos-backend/internal/handlers"
	"order-photos-backend/internal/middleware"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Cleanup *handlers.CleanupHandler
	Gallery *handlers.GalleryHandler
	Orders  *handlers.OrdersHandler
}

type Server struct {
	router *gin.Engine
	server *http.Server
	log    *zap.Logger
}

func New(cfg *config.Config, h Handlers, log *zap.Logger) *Server {
	return &Server{
		router: NewRouter(cfg, h, log),
		log:    log,
	}
}

// NewRouter registers every route. Legacy /api paths and their /api/v1
// counterparts share one handler.
func NewRouter(cfg *config.Config, h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.Health.Health)

	cron := middleware.CronSecret(cfg.CronSecret)
	for _, path := range []string{"/api/cleanup-order-photos", "/api/v1/cron/cleanup-order-photos"} {
		router.GET(path, cron, h.Cleanup.CleanupOrderPhotos)
		router.POST(path, cron, h.Cleanup.CleanupOrderPhotos)
	}

	gallery := []gin.HandlerFunc{
		middleware.GalleryCORS(),
		middleware.NoStore(),
		middleware.RateLimit(cfg.GalleryRateLimit, log),
		h.Gallery.GetOrderPhotos,
	}
	for _, path := range []string{"/api/order-photos", "/api/v1/order-photos"} {
		router.GET(path, gallery...)
		router.OPTIONS(path, gallery...)
	}

	staff := router.Group("/api/v1/orders")
	staff.Use(middleware.AuthMiddleware(cfg))
	staff.POST("/:order_id/archive", h.Orders.ArchiveOrder)
	staff.POST("/:order_id/reopen", h.Orders.ReopenOrder)

	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(port string) error {
	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// purge runs can take a while on a large backlog
		WriteTimeout: 5 * time.Minute,
	}

	s.log.Info("server starting", zap.String("port", port))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
