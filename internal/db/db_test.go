package db

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestConnectPostgres(t *testing.T) {
	t.Run("invalid DATABASE_URL should fail", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if _, err := ConnectPostgres(ctx, "://not a dsn"); err == nil {
			t.Fatal("expected an error for an invalid DSN")
		}
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		pool, err := ConnectPostgres(context.Background(), dsn)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		// schema creation is repeatable
		if err := InitSchema(context.Background(), pool); err != nil {
			t.Errorf("second InitSchema: %v", err)
		}
	})
}

func TestConnectMongo(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping integration test")
	}

	db, err := ConnectMongo(context.Background(), uri, "menuplus_test")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Client().Disconnect(context.Background())
}

func TestConnectRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	rdb, err := ConnectRedis(context.Background(), addr, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rdb.Close()
}
