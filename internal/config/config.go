package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

// Config holds the configuration for the menu API.
type Config struct {
	Port string

	// Document store
	StoreDriver string
	DatabaseURL string
	MongoURI    string
	MongoDB     string

	// Read cache (optional)
	RedisAddr     string
	RedisPassword string
	MenuCacheTTL  time.Duration

	// Empty means any origin
	CORSOrigins []string

	// Upload archive (optional)
	R2 *R2Config
}

// R2Config is the Cloudflare R2 bucket uploaded workbooks are archived to.
type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	// auth reads JWT_SECRET when signing; fail here instead of on first login
	if os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	cfg := &Config{
		Port:          port,
		StoreDriver:   strings.ToLower(os.Getenv("STORE_DRIVER")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDB:       os.Getenv("MONGODB_DB"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MenuCacheTTL:  10 * time.Minute,
	}

	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StorePostgres
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "menuplus"
	}

	switch cfg.StoreDriver {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case StoreMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI environment variable not set")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if ttl := os.Getenv("MENU_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid MENU_CACHE_TTL %q: %w", ttl, err)
		}
		cfg.MenuCacheTTL = d
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	r2, err := r2FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.R2 = r2

	return cfg, nil
}

// r2FromEnv returns nil when no R2 variable is set. Setting any of them
// makes the whole group required.
func r2FromEnv() (*R2Config, error) {
	vars := []string{"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL"}

	values := make(map[string]string, len(vars))
	anySet := false
	for _, name := range vars {
		values[name] = os.Getenv(name)
		if values[name] != "" {
			anySet = true
		}
	}
	if !anySet {
		return nil, nil
	}

	for _, name := range vars {
		if values[name] == "" {
			return nil, fmt.Errorf("%s environment variable not set", name)
		}
	}

	return &R2Config{
		Endpoint:      values["R2_ENDPOINT"],
		AccessKey:     values["R2_ACCESS_KEY"],
		SecretKey:     values["R2_SECRET_KEY"],
		Bucket:        values["R2_BUCKET_NAME"],
		PublicBaseURL: strings.TrimSuffix(values["R2_PUBLIC_BASE_URL"], "/"),
	}, nil
}
