package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]*Admin
}

func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{
		admins: make(map[string]*Admin),
	}
}

func (r *InMemoryAdminRepository) Save(ctx context.Context, admin *Admin) error {
	// Generate UUID if not already set
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *admin
	r.admins[admin.Username] = &stored
	return nil
}

func (r *InMemoryAdminRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[username]
	if !ok {
		return nil, ErrAdminNotFound
	}
	found := *admin
	return &found, nil
}

func (r *InMemoryAdminRepository) AnyExists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.admins) > 0, nil
}
