package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
	"github.com/futsalhub/booking-system/internal/metrics"
)

type AuthHandler struct {
	identities ports.IdentityService
	sessions   ports.SessionService
}

func NewAuthHandler(identities ports.IdentityService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{identities: identities, sessions: sessions}
}

// Register creates a new identity.
//
// @Summary      Register an identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Handle, secret and role"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("unknown", resultLabel(err, "created")).Inc()
		return err
	}

	identity, err := h.identities.Register(c.Request().Context(), req.Handle, req.Secret, role)
	metrics.RegistrationsTotal.WithLabelValues(role.String(), resultLabel(err, "created")).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Identity: identity})
}

// Login authenticates an identity and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	identity, err := h.identities.Authenticate(ctx, req.Handle, req.Secret)
	metrics.LoginsTotal.WithLabelValues(resultLabel(err, "ok")).Inc()
	if err != nil {
		return err
	}

	token, session, err := h.sessions.Open(ctx, identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, ExpiresAt: &session.ExpiresAt, Identity: identity})
}

// Logout revokes the caller's session token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Close(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
