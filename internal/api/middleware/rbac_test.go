package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/api/handler"
	"github.com/futsalhub/booking-system/internal/core/domain"
)

func TestRBAC_Allowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(handler.ContextKeyRole, domain.RoleOwner)

	h := RBAC(domain.RoleOwner)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_Forbidden(t *testing.T) {
	for _, role := range []any{domain.RoleRegular, nil, "owner"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(handler.ContextKeyRole, role)
		}

		h := RBAC(domain.RoleOwner)(func(c echo.Context) error {
			t.Fatalf("next should not be called for %v", role)
			return nil
		})

		if err := h(c); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %v: expected ErrForbidden, got %v", role, err)
		}
	}
}
