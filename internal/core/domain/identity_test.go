package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"regular":       RoleRegular,
		"user":          RoleRegular,
		"Owner":         RoleOwner,
		" admin ":       RoleAdministrator,
		"administrator": RoleAdministrator,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseRole(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseRole("guest"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("guest").Valid() {
		t.Errorf("guest should not be valid")
	}
}

func TestIdentity_Is(t *testing.T) {
	a := &Identity{ID: "1", Handle: "alice"}
	sameID := &Identity{ID: "1", Handle: "alice"}
	b := &Identity{ID: "2", Handle: "bob"}

	if !a.Is(sameID) {
		t.Errorf("expected identities with equal IDs to match")
	}
	if a.Is(b) || a.Is(nil) {
		t.Errorf("unexpected match")
	}
}

func TestFacility_OwnedBy(t *testing.T) {
	f := &Facility{OwnerID: "1"}
	if !f.OwnedBy(&Identity{ID: "1"}) {
		t.Errorf("expected owner match")
	}
	if f.OwnedBy(&Identity{ID: "2"}) || f.OwnedBy(nil) {
		t.Errorf("unexpected owner match")
	}
}
