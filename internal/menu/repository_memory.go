package menu

import (
	"context"
	"encoding/json"
	"sync"
)

// InMemoryRepository keeps documents as JSON so callers never share
// mutable state with the store.
type InMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs: make(map[string][]byte),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (*Document, error) {
	r.mu.RLock()
	data, ok := r.docs[key]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrMenuNotFound
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, key string, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.docs[key] = data
	r.mu.Unlock()
	return nil
}
