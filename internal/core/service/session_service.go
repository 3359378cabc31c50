package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

type sessionClaims struct {
	Handle string `json:"handle"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues HS256 session tokens and honours logouts through a
// revocation store.
type SessionService struct {
	store    ports.SessionStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

func NewSessionService(store ports.SessionStore, secret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		store:    store,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		log:      log,
	}
}

// Open starts a session for an authenticated identity.
func (s *SessionService) Open(_ context.Context, identity *domain.Identity) (string, *domain.Session, error) {
	if identity == nil {
		return "", nil, domain.ErrUnauthenticated
	}

	now := s.now()
	session := &domain.Session{
		TokenID:    uuid.NewString(),
		IdentityID: identity.ID,
		Handle:     identity.Handle,
		Role:       identity.Role,
		ExpiresAt:  now.Add(s.tokenTTL).Truncate(time.Second),
	}
	claims := sessionClaims{
		Handle: session.Handle,
		Role:   string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			Subject:   session.IdentityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("open session: %w", err)
	}
	return token, session, nil
}

// Verify parses token and rejects it when it is malformed, expired, or revoked.
func (s *SessionService) Verify(ctx context.Context, token string) (*domain.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}

	role := domain.Role(claims.Role)
	if claims.ID == "" || claims.Subject == "" || !role.Valid() {
		return nil, domain.ErrUnauthenticated
	}

	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}
	if revoked {
		return nil, domain.ErrUnauthenticated
	}

	session := &domain.Session{
		TokenID:    claims.ID,
		IdentityID: claims.Subject,
		Handle:     claims.Handle,
		Role:       role,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// Close revokes the session so its token is refused until it expires.
func (s *SessionService) Close(ctx context.Context, session *domain.Session) error {
	if session == nil || session.TokenID == "" {
		return errors.New("close session: missing token id")
	}
	if err := s.store.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	s.log.Info().Str("handle", session.Handle).Msg("session closed")
	return nil
}
