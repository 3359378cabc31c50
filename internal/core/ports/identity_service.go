package ports

import (
	"context"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

type IdentityService interface {
	Register(ctx context.Context, handle, secret string, role domain.Role) (*domain.Identity, error)
	Authenticate(ctx context.Context, handle, secret string) (*domain.Identity, error)
	Lookup(ctx context.Context, id string) (*domain.Identity, error)
}

// SessionService issues and checks the tokens that carry an authenticated identity.
type SessionService interface {
	Open(ctx context.Context, identity *domain.Identity) (string, *domain.Session, error)
	Verify(ctx context.Context, token string) (*domain.Session, error)
	Close(ctx context.Context, session *domain.Session) error
}
