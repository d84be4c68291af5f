package auth

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/doctorbhh/Menu-plus/internal/db"
	"github.com/google/uuid"
)

func exerciseAdminRepository(t *testing.T, repo AdminRepository) {
	t.Helper()
	ctx := context.Background()
	username := "admin-" + uuid.New().String()[:8]

	if _, err := repo.FindByUsername(ctx, username); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}

	admin := &Admin{Username: username, PasswordHash: "hash", CreatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	if err := repo.Save(ctx, admin); err != nil {
		t.Fatalf("save: %v", err)
	}

	found, err := repo.FindByUsername(ctx, username)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != admin.ID || found.PasswordHash != "hash" {
		t.Errorf("unexpected admin %+v", found)
	}

	exists, err := repo.AnyExists(ctx)
	if err != nil || !exists {
		t.Errorf("expected an admin to exist, got %v (err=%v)", exists, err)
	}
}

func TestInMemoryAdminRepository(t *testing.T) {
	repo := NewInMemoryAdminRepository()

	exists, _ := repo.AnyExists(context.Background())
	if exists {
		t.Fatal("expected an empty repository")
	}

	exerciseAdminRepository(t, repo)
}

func TestPostgresAdminRepository(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := db.ConnectPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	exerciseAdminRepository(t, NewPostgresAdminRepository(pool))
}

func TestMongoAdminRepository(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping integration test")
	}

	database, err := db.ConnectMongo(context.Background(), uri, "menuplus_test")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer database.Client().Disconnect(context.Background())

	exerciseAdminRepository(t, NewMongoAdminRepository(database))
}
