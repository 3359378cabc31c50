package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

type stubIdentityRepo struct {
	byHandle map[string]*domain.Identity
	findErr  error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byHandle: make(map[string]*domain.Identity)}
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	if _, exists := r.byHandle[identity.Handle]; exists {
		return domain.ErrDuplicateHandle
	}
	r.byHandle[identity.Handle] = identity
	return nil
}

func (r *stubIdentityRepo) FindByHandle(_ context.Context, handle string) (*domain.Identity, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	identity, ok := r.byHandle[handle]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity, nil
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	for _, identity := range r.byHandle {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func newIdentitySvc(repo *stubIdentityRepo) *IdentityService {
	return NewIdentityService(repo, bcrypt.MinCost, zerolog.Nop())
}

func TestIdentityService_Register_Success(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())

	identity, err := svc.Register(context.Background(), "alice", "pw", domain.RoleOwner)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if identity.ID == "" {
		t.Fatalf("expected an ID to be assigned")
	}
	if identity.Handle != "alice" || identity.Role != domain.RoleOwner {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.SecretHash == "pw" {
		t.Fatalf("expected secret to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.SecretHash), secretDigest("pw")); err != nil {
		t.Fatalf("stored hash does not match secret: %v", err)
	}
}

func TestIdentityService_Register_MissingField(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())

	if _, err := svc.Register(context.Background(), "", "pw", domain.RoleRegular); err != domain.ErrMissingField {
		t.Fatalf("expected ErrMissingField for empty handle, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", domain.RoleRegular); err != domain.ErrMissingField {
		t.Fatalf("expected ErrMissingField for empty secret, got %v", err)
	}
}

func TestIdentityService_Register_UnknownRole(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())

	if _, err := svc.Register(context.Background(), "bob", "pw", domain.Role("guest")); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestIdentityService_Register_DuplicateRegardlessOfSecretAndRole(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())

	if _, err := svc.Register(context.Background(), "bob", "pw", domain.RoleRegular); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	for _, role := range domain.Roles {
		if _, err := svc.Register(context.Background(), "bob", "other-"+role.String(), role); err != domain.ErrDuplicateHandle {
			t.Fatalf("expected ErrDuplicateHandle for role %s, got %v", role, err)
		}
	}
}

func TestIdentityService_Authenticate_ReturnsRegisteredIdentity(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())

	registered, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdministrator)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.Authenticate(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got != registered {
		t.Fatalf("expected the exact registered identity, got %+v", got)
	}
}

func TestIdentityService_Authenticate_Rejections(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())
	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleRegular)

	cases := []struct {
		name, handle, secret string
	}{
		{"suffixed secret", "dave", "goodpass" + "x"},
		{"case differs", "dave", "GOODPASS"},
		{"handle case differs", "Dave", "goodpass"},
		{"unknown handle", "ghost", "goodpass"},
		{"empty secret", "dave", ""},
		{"empty handle", "", "goodpass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authenticate(context.Background(), tc.handle, tc.secret); err != domain.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestIdentityService_Authenticate_RepositoryFailure(t *testing.T) {
	repo := newStubIdentityRepo()
	repo.findErr = errors.New("boom")
	svc := newIdentitySvc(repo)

	_, err := svc.Authenticate(context.Background(), "dave", "pw")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestIdentityService_Lookup(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())
	registered, _ := svc.Register(context.Background(), "erin", "pw", domain.RoleRegular)

	got, err := svc.Lookup(context.Background(), registered.ID)
	if err != nil || got != registered {
		t.Fatalf("unexpected lookup result: %+v %v", got, err)
	}
	if _, err := svc.Lookup(context.Background(), "missing"); err != domain.ErrIdentityNotFound {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestIdentityService_LongSecret(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())
	ctx := context.Background()
	secret := strings.Repeat("x", 100)

	if _, err := svc.Register(ctx, "carol", secret, domain.RoleRegular); err != nil {
		t.Fatalf("Register with a 100-byte secret: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "carol", secret); err != nil {
		t.Fatalf("Authenticate with the registered secret: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "carol", secret+"x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a longer secret, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "carol", strings.Repeat("x", 72)); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a 72-byte prefix, got %v", err)
	}
}

func TestIdentityService_Register_BlankHandleIsNotMissing(t *testing.T) {
	svc := newIdentitySvc(newStubIdentityRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "  ", "pw", domain.RoleRegular); err != nil {
		t.Fatalf("a handle of spaces is non-empty: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "  ", "pw"); err != nil {
		t.Fatalf("Authenticate with the same handle: %v", err)
	}
}
