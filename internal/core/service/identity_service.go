package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

// IdentityService implements registration and authentication.
type IdentityService struct {
	repo ports.IdentityRepository
	cost int
	log  zerolog.Logger
}

// NewIdentityService returns an IdentityService hashing secrets with the given
// bcrypt cost. A cost <= 0 falls back to bcrypt.DefaultCost.
func NewIdentityService(repo ports.IdentityRepository, cost int, log zerolog.Logger) *IdentityService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &IdentityService{repo: repo, cost: cost, log: log}
}

func (s *IdentityService) Register(ctx context.Context, handle, secret string, role domain.Role) (*domain.Identity, error) {
	if handle == "" || secret == "" {
		return nil, domain.ErrMissingField
	}
	if !role.Valid() {
		return nil, fmt.Errorf("register: %w: %q", domain.ErrUnknownRole, role)
	}

	hash, err := bcrypt.GenerateFromPassword(secretDigest(secret), s.cost)
	if err != nil {
		return nil, fmt.Errorf("register: hash secret: %w", err)
	}

	identity := &domain.Identity{
		ID:         uuid.NewString(),
		Handle:     handle,
		SecretHash: string(hash),
		Role:       role,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, err
	}

	s.log.Info().Str("handle", handle).Str("role", role.String()).Msg("identity registered")
	return identity, nil
}

// Authenticate returns the identity registered under handle when secret
// matches exactly. Unknown handles and wrong secrets are indistinguishable.
func (s *IdentityService) Authenticate(ctx context.Context, handle, secret string) (*domain.Identity, error) {
	if handle == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.SecretHash), secretDigest(secret)) != nil {
		s.log.Debug().Str("handle", handle).Msg("secret mismatch")
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

func (s *IdentityService) Lookup(ctx context.Context, id string) (*domain.Identity, error) {
	return s.repo.FindByID(ctx, id)
}

// secretDigest folds a secret of any length into the 44 bytes bcrypt hashes,
// below its 72-byte input limit.
func secretDigest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
