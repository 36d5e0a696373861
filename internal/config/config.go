package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendPostgREST = "postgrest"
	StoreBackendPostgres  = "postgres"

	ObjectStoreSupabase = "supabase"
	ObjectStoreMinio    = "minio"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Data store
	StoreBackend string
	DatabaseURL  string

	// Object store
	ObjectStore    string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioPublicURL string

	// Purge job
	CronSecret             string
	RetentionMonths        int
	OrdersPerRun           int
	OrderIDChunk           int
	PhotosPerLookup        int
	StorageDeleteBatch     int
	RowDeleteBatch         int
	PurgeLookupConcurrency int
	RedisURL               string
	PurgeLockTTL           time.Duration

	// Gallery
	ActiveStatuses   []string
	GalleryRateLimit int

	// Server
	Port        string
	Environment string
	BaseURL     string
	LogLevel    string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "order-photos"),

		StoreBackend: getEnv("STORE_BACKEND", StoreBackendPostgREST),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		ObjectStore:    getEnv("OBJECT_STORE", ObjectStoreSupabase),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioPublicURL: strings.TrimRight(getEnv("MINIO_PUBLIC_URL", ""), "/"),

		CronSecret: getEnv("CRON_SECRET", ""),
		RedisURL:   getEnv("REDIS_URL", ""),

		ActiveStatuses: splitList(getEnv("ACTIVE_STATUSES", "queued,new,in_progress,ready")),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MinioUseSSL, err = getEnvBool("MINIO_USE_SSL", false); err != nil {
		return nil, err
	}
	ints := []struct {
		key   string
		def   int
		value *int
	}{
		{"RETENTION_MONTHS", 12, &cfg.RetentionMonths},
		{"PURGE_ORDERS_PER_RUN", 200, &cfg.OrdersPerRun},
		{"PURGE_ORDER_ID_CHUNK", 50, &cfg.OrderIDChunk},
		{"PURGE_PHOTOS_PER_LOOKUP", 500, &cfg.PhotosPerLookup},
		{"PURGE_STORAGE_BATCH", 200, &cfg.StorageDeleteBatch},
		{"PURGE_ROW_BATCH", 200, &cfg.RowDeleteBatch},
		{"PURGE_LOOKUP_CONCURRENCY", 4, &cfg.PurgeLookupConcurrency},
		{"GALLERY_RATE_LIMIT", 20, &cfg.GalleryRateLimit},
	}
	for _, i := range ints {
		if *i.value, err = getEnvInt(i.key, i.def); err != nil {
			return nil, err
		}
	}
	if cfg.PurgeLockTTL, err = getEnvDuration("PURGE_LOCK_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the shape of the configuration. Missing credentials are
// allowed here; the handlers that need them answer with missing_env instead.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendPostgREST, StoreBackendPostgres:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendPostgREST, StoreBackendPostgres, c.StoreBackend)
	}
	switch c.ObjectStore {
	case ObjectStoreSupabase, ObjectStoreMinio:
	default:
		return fmt.Errorf("OBJECT_STORE must be %q or %q, got %q", ObjectStoreSupabase, ObjectStoreMinio, c.ObjectStore)
	}
	if c.RetentionMonths <= 0 {
		return fmt.Errorf("RETENTION_MONTHS must be positive")
	}
	positive := map[string]int{
		"PURGE_ORDERS_PER_RUN":     c.OrdersPerRun,
		"PURGE_ORDER_ID_CHUNK":     c.OrderIDChunk,
		"PURGE_PHOTOS_PER_LOOKUP":  c.PhotosPerLookup,
		"PURGE_STORAGE_BATCH":      c.StorageDeleteBatch,
		"PURGE_ROW_BATCH":          c.RowDeleteBatch,
		"PURGE_LOOKUP_CONCURRENCY": c.PurgeLookupConcurrency,
		"GALLERY_RATE_LIMIT":       c.GalleryRateLimit,
	}
	for key, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	if len(c.ActiveStatuses) == 0 {
		return fmt.Errorf("ACTIVE_STATUSES must list at least one status")
	}
	return nil
}

// DataStoreConfigured reports whether the selected data store has the
// credentials it needs.
func (c *Config) DataStoreConfigured() bool {
	if c.StoreBackend == StoreBackendPostgres {
		return c.DatabaseURL != ""
	}
	return c.SupabaseURL != "" && c.SupabaseServiceRoleKey != ""
}

func (c *Config) ObjectStoreConfigured() bool {
	if c.ObjectStore == ObjectStoreMinio {
		return c.MinioEndpoint != "" && c.MinioAccessKey != "" && c.MinioSecretKey != ""
	}
	return c.SupabaseURL != "" && c.SupabaseServiceRoleKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
