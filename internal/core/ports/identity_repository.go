package ports

import (
	"context"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// IdentityRepository defines the interface for identity persistence.
type IdentityRepository interface {
	// Create stores identity, failing with domain.ErrDuplicateHandle when the
	// handle is already taken. The check and the insert are one step.
	Create(ctx context.Context, identity *domain.Identity) error
	FindByHandle(ctx context.Context, handle string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}
