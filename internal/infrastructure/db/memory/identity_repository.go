// Package memory holds the process-lifetime stores. Nothing here survives a
// restart.
package memory

import (
	"context"
	"sync"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// IdentityRepository implements ports.IdentityRepository in memory.
type IdentityRepository struct {
	mu       sync.RWMutex
	byHandle map[string]*domain.Identity
	byID     map[string]*domain.Identity
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{
		byHandle: make(map[string]*domain.Identity),
		byID:     make(map[string]*domain.Identity),
	}
}

func (r *IdentityRepository) Create(_ context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byHandle[identity.Handle]; exists {
		return domain.ErrDuplicateHandle
	}
	r.byHandle[identity.Handle] = identity
	r.byID[identity.ID] = identity
	return nil
}

func (r *IdentityRepository) FindByHandle(_ context.Context, handle string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byHandle[handle]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity, nil
}

func (r *IdentityRepository) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity, nil
}
