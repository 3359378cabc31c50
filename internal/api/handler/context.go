package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

// Context keys set by the Auth middleware.
const (
	ContextKeySession = "session"
	ContextKeyRole    = "role"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// absence means the route was mounted without Auth, which is a wiring bug
// surfaced to the client as 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(ContextKeySession).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return session, nil
}

// ctxIdentity resolves the session's identity. A session whose identity no
// longer resolves is treated as unauthenticated.
func ctxIdentity(c echo.Context, identities ports.IdentityService) (*domain.Identity, error) {
	session, err := ctxSession(c)
	if err != nil {
		return nil, err
	}
	identity, err := identities.Lookup(c.Request().Context(), session.IdentityID)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}
