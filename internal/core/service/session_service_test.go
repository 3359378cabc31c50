package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/infrastructure/db/memory"
)

func newSessionSvc(ttl time.Duration) *SessionService {
	return NewSessionService(memory.NewSessionStore(), "secret", ttl, zerolog.Nop())
}

func TestSessionService_OpenVerify(t *testing.T) {
	svc := newSessionSvc(time.Hour)
	identity := &domain.Identity{ID: "id-1", Handle: "bob", Role: domain.RoleRegular}

	token, opened, err := svc.Open(context.Background(), identity)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if token == "" || opened.TokenID == "" {
		t.Fatalf("expected token and token id")
	}

	session, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if session.IdentityID != "id-1" || session.Handle != "bob" || session.Role != domain.RoleRegular {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.TokenID != opened.TokenID {
		t.Fatalf("token id mismatch: %s != %s", session.TokenID, opened.TokenID)
	}
}

func TestSessionService_Close_RevokesToken(t *testing.T) {
	svc := newSessionSvc(time.Hour)
	token, _, _ := svc.Open(context.Background(), &domain.Identity{ID: "id-1", Handle: "bob", Role: domain.RoleRegular})

	session, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := svc.Close(context.Background(), session); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestSessionService_Verify_Expired(t *testing.T) {
	svc := newSessionSvc(time.Minute)
	start := time.Now()
	svc.now = func() time.Time { return start }

	token, _, _ := svc.Open(context.Background(), &domain.Identity{ID: "id-1", Handle: "bob", Role: domain.RoleRegular})

	svc.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := svc.Verify(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestSessionService_Verify_RejectsForeignTokens(t *testing.T) {
	svc := newSessionSvc(time.Hour)

	wrongKey, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "id-1",
		"jti":  "x",
		"role": "regular",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other"))

	badRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "id-1",
		"jti":  "x",
		"role": "guest",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key": wrongKey,
		"bad role":  badRole,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Verify(context.Background(), token); err != domain.ErrUnauthenticated {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestSessionService_Open_NilIdentity(t *testing.T) {
	svc := newSessionSvc(time.Hour)
	if _, _, err := svc.Open(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
