package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

type dashboardFunc func(c echo.Context, identity *domain.Identity) error

// DashboardHandler routes an authenticated identity to the view for its role.
type DashboardHandler struct {
	catalog    ports.CatalogService
	ledger     ports.LedgerService
	identities ports.IdentityService
	views      map[domain.Role]dashboardFunc
}

func NewDashboardHandler(catalog ports.CatalogService, ledger ports.LedgerService, identities ports.IdentityService) *DashboardHandler {
	h := &DashboardHandler{catalog: catalog, ledger: ledger, identities: identities}
	h.views = map[domain.Role]dashboardFunc{
		domain.RoleRegular:       h.regular,
		domain.RoleOwner:         h.owner,
		domain.RoleAdministrator: h.administrator,
	}
	return h
}

// Show renders the caller's role dashboard.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  dashboardResponse
// @Failure      401   {object}  errorResponse
// @Failure      501   {object}  errorResponse
// @Router       /v1/me/dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	identity, err := ctxIdentity(c, h.identities)
	if err != nil {
		return err
	}
	view, ok := h.views[identity.Role]
	if !ok {
		return domain.ErrUnknownRole
	}
	return view(c, identity)
}

// regular sees every facility and its own bookings.
func (h *DashboardHandler) regular(c echo.Context, identity *domain.Identity) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, dashboardResponse{
		Role:         identity.Role,
		Handle:       identity.Handle,
		Facilities:   collectFacilities(h.catalog.ListFacilities(ctx)),
		Reservations: collectReservations(h.ledger.ListReservationsFor(ctx, identity)),
	})
}

// owner sees only the facilities it owns.
func (h *DashboardHandler) owner(c echo.Context, identity *domain.Identity) error {
	return c.JSON(http.StatusOK, dashboardResponse{
		Role:       identity.Role,
		Handle:     identity.Handle,
		Facilities: collectFacilities(h.catalog.ListFacilitiesByOwner(c.Request().Context(), identity)),
	})
}

func (h *DashboardHandler) administrator(echo.Context, *domain.Identity) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "administrator dashboard is under development")
}
