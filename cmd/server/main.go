// @title           Order Photos Backend API
// @version         1.0.0
// @description     Order photo retention and gallery API. Resolves expiring customer gallery links, purges photos of orders archived longer than the retention window, and lets staff archive and reopen orders.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"order-photos-backend/docs"
	"order-photos-backend/internal/config"
	"order-photos-backend/internal/database"
	"order-photos-backend/internal/handlers"
	"order-photos-backend/internal/logger"
	"order-photos-backend/internal/minio"
	"order-photos-backend/internal/redis"
	"order-photos-backend/internal/server"
	"order-photos-backend/internal/services"
	"order-photos-backend/internal/supabase"
)

// dataStore is everything the services need from the orders database.
type dataStore interface {
	services.PurgeStore
	services.GalleryStore
	services.OrderStore
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(cfg.LogLevel, cfg.Environment)
	defer logr.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	store, closeStore := newDataStore(ctx, cfg, logr)
	defer closeStore()

	objects := newObjectStore(cfg, logr)

	var locker services.Locker
	if cfg.RedisURL != "" {
		r, err := redis.NewRedisFromURL(ctx, cfg.RedisURL)
		if err != nil {
			logr.Warn("redis unavailable, purge runs without a lock", zap.Error(err))
		} else {
			defer r.Close()
			locker = r
		}
	}

	purgeService := services.NewPurgeService(store, objects, locker, services.PurgeOptions{
		RetentionMonths:    cfg.RetentionMonths,
		OrdersPerRun:       cfg.OrdersPerRun,
		OrderIDChunk:       cfg.OrderIDChunk,
		PhotosPerLookup:    cfg.PhotosPerLookup,
		StorageDeleteBatch: cfg.StorageDeleteBatch,
		RowDeleteBatch:     cfg.RowDeleteBatch,
		LookupConcurrency:  cfg.PurgeLookupConcurrency,
		LockTTL:            cfg.PurgeLockTTL,
	}, logr)
	galleryService := services.NewGalleryService(store, objects, cfg.ActiveStatuses, logr)
	orderService := services.NewOrderService(store, cfg.ActiveStatuses, logr)

	dataStoreName, objectStoreName := "", ""
	if store != nil {
		dataStoreName = cfg.StoreBackend
	}
	if objects != nil {
		objectStoreName = cfg.ObjectStore
	}

	srv := server.New(cfg, server.Handlers{
		Health:  handlers.NewHealthHandler(dataStoreName, objectStoreName, locker != nil),
		Cleanup: handlers.NewCleanupHandler(purgeService, logr),
		Gallery: handlers.NewGalleryHandler(galleryService, logr),
		Orders:  handlers.NewOrdersHandler(orderService, logr),
	}, logr)

	go func() {
		if err := srv.Run(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
		return
	}
	logr.Info("server gracefully stopped")
}

// newDataStore returns nil when the selected backend lacks credentials; the
// endpoints then answer missing_env instead of the process refusing to start.
func newDataStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (dataStore, func()) {
	noop := func() {}
	if !cfg.DataStoreConfigured() {
		logr.Warn("data store credentials not set", zap.String("backend", cfg.StoreBackend))
		return nil, noop
	}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			logr.Error("failed to connect to database", zap.Error(err))
			return nil, noop
		}

		applied, err := database.NewMigrator(dbClient.DB(), logr).Run(ctx)
		if err != nil {
			logr.Warn("migration failed", zap.Error(err))
		} else {
			logr.Info("migrations completed", zap.Strings("applied", applied))
		}
		return dbClient, func() { dbClient.Close() }

	default:
		client, err := supabase.NewClient(cfg)
		if err != nil {
			logr.Error("failed to initialize supabase client", zap.Error(err))
			return nil, noop
		}
		return supabase.NewRestClient(client), noop
	}
}

func newObjectStore(cfg *config.Config, logr *zap.Logger) services.ObjectStore {
	if !cfg.ObjectStoreConfigured() {
		logr.Warn("object store credentials not set", zap.String("backend", cfg.ObjectStore))
		return nil
	}

	switch cfg.ObjectStore {
	case config.ObjectStoreMinio:
		client, err := minio.NewStorageClient(minio.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.SupabaseStorageBucket,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			logr.Error("failed to initialize minio client", zap.Error(err))
			return nil
		}
		return client

	default:
		client, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
		if err != nil {
			logr.Error("failed to initialize storage client", zap.Error(err))
			return nil
		}
		return client
	}
}
