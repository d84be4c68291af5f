package menu

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/doctorbhh/Menu-plus/internal/db"
)

// exerciseRepository runs the behaviour every Repository must share.
func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	key := "test-" + time.Now().Format("150405.000000")

	if _, err := repo.Get(ctx, key); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}

	doc := ParseSheets(nil)
	doc.Month = "February 2026"
	doc.Sheets = []string{"Veg-NonVeg"}
	doc.Menu.VegNonVeg = []DayEntry{{
		Day:     "Monday",
		Dates:   []int{2, 16},
		RawDate: "Mon 2,16",
		Meals: MealSet{
			Breakfast: []string{"Idli", "[16] Dosa"},
			Lunch:     []string{},
			Snacks:    []string{},
			Dinner:    []string{"Roti"},
		},
	}}

	if err := repo.Upsert(ctx, key, doc); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Month != doc.Month || len(got.Menu.VegNonVeg) != 1 {
		t.Fatalf("unexpected document %+v", got)
	}
	if !equalStrings(got.Menu.VegNonVeg[0].Meals.Breakfast, []string{"Idli", "[16] Dosa"}) {
		t.Errorf("unexpected breakfast %v", got.Menu.VegNonVeg[0].Meals.Breakfast)
	}

	doc.Month = "March 2026"
	if err := repo.Upsert(ctx, key, doc); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if got.Month != "March 2026" {
		t.Errorf("expected replaced document, got month %q", got.Month)
	}
}

func TestInMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewInMemoryRepository())
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	repo.Upsert(ctx, CurrentKey, &Document{Month: "February 2026"})
	got, _ := repo.Get(ctx, CurrentKey)
	got.Month = "changed"

	again, _ := repo.Get(ctx, CurrentKey)
	if again.Month != "February 2026" {
		t.Error("expected stored document to be unaffected by caller edits")
	}
}

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := db.ConnectPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	exerciseRepository(t, NewPostgresRepository(pool))
}

func TestMongoRepository(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping integration test")
	}

	database, err := db.ConnectMongo(context.Background(), uri, "menuplus_test")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer database.Client().Disconnect(context.Background())

	exerciseRepository(t, NewMongoRepository(database))
}

func TestCachedRepository(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	rdb, err := db.ConnectRedis(context.Background(), addr, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rdb.Close()

	backing := NewInMemoryRepository()
	cached := NewCachedRepository(backing, rdb, time.Minute)
	exerciseRepository(t, cached)

	// a write through the cache is served from Redis afterwards
	ctx := context.Background()
	key := "cached-" + time.Now().Format("150405.000000")
	defer rdb.Del(ctx, cacheKeyPrefix+key)

	if err := cached.Upsert(ctx, key, &Document{Month: "April 2026"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	backing.Upsert(ctx, key, &Document{Month: "stale"})

	got, err := cached.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Month != "April 2026" {
		t.Errorf("expected cached month, got %q", got.Month)
	}
}
