package menu

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "menuplus:menu:"

// CachedRepository wraps a Repository with a Redis read-through cache.
// Writes go to the wrapped store first and then refresh the cached copy.
type CachedRepository struct {
	repo Repository
	rdb  redis.Cmdable
	ttl  time.Duration
}

// NewCachedRepository creates a CachedRepository. A zero ttl keeps cached
// entries until the next write.
func NewCachedRepository(repo Repository, rdb redis.Cmdable, ttl time.Duration) *CachedRepository {
	return &CachedRepository{repo: repo, rdb: rdb, ttl: ttl}
}

// Get serves from Redis when it can. Cache failures are logged and the
// wrapped repository answers instead.
func (c *CachedRepository) Get(ctx context.Context, key string) (*Document, error) {
	data, err := c.rdb.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err == nil {
		var doc Document
		if err := json.Unmarshal(data, &doc); err == nil {
			return &doc, nil
		}
		log.Printf("⚠️ menu cache: dropping undecodable entry %q", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("⚠️ menu cache: get %q: %v", key, err)
	}

	doc, err := c.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, doc)
	return doc, nil
}

func (c *CachedRepository) Upsert(ctx context.Context, key string, doc *Document) error {
	if err := c.repo.Upsert(ctx, key, doc); err != nil {
		return err
	}
	c.store(ctx, key, doc)
	return nil
}

func (c *CachedRepository) store(ctx context.Context, key string, doc *Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKeyPrefix+key, data, c.ttl).Err(); err != nil {
		log.Printf("⚠️ menu cache: set %q: %v", key, err)
	}
}
