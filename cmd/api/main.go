package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/doctorbhh/Menu-plus/internal/auth"
	"github.com/doctorbhh/Menu-plus/internal/config"
	"github.com/doctorbhh/Menu-plus/internal/db"
	"github.com/doctorbhh/Menu-plus/internal/menu"
	"github.com/doctorbhh/Menu-plus/internal/router"
	"github.com/doctorbhh/Menu-plus/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ───────────────────────── STORES ─────────────────────────
	var (
		menuRepo  menu.Repository
		adminRepo auth.AdminRepository
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		// the pool keeps its context for background connects
		pgDB, err := db.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer pgDB.Close()

		menuRepo = menu.NewPostgresRepository(pgDB)
		adminRepo = auth.NewPostgresAdminRepository(pgDB)

	case config.StoreMongo:
		mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer mongoDB.Client().Disconnect(context.Background())

		menuRepo = menu.NewMongoRepository(mongoDB)
		adminRepo = auth.NewMongoAdminRepository(mongoDB)

	case config.StoreMemory:
		log.Println("⚠️ Using in-memory store, data is lost on restart")
		menuRepo = menu.NewInMemoryRepository()
		adminRepo = auth.NewInMemoryAdminRepository()
	}

	// ───────────────────────── CACHE ─────────────────────────
	if cfg.RedisAddr != "" {
		rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer rdb.Close()

		menuRepo = menu.NewCachedRepository(menuRepo, rdb, cfg.MenuCacheTTL)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var archive menu.Storage
	if cfg.R2 != nil {
		r2Client, err := storage.NewR2Client(ctx, *cfg.R2)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2Client
	} else {
		log.Println("⚠️ R2 not configured, uploaded workbooks are not archived")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authHandler := auth.NewHandler(auth.NewService(adminRepo))
	menuHandler := menu.NewHandler(menu.NewService(menuRepo, archive))

	r := router.NewRouter(router.Deps{
		Auth:        authHandler,
		Menu:        menuHandler,
		CORSOrigins: cfg.CORSOrigins,
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
