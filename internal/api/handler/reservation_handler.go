package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/core/ports"
	"github.com/futsalhub/booking-system/internal/metrics"
)

type ReservationHandler struct {
	ledger     ports.LedgerService
	catalog    ports.CatalogService
	identities ports.IdentityService
}

func NewReservationHandler(ledger ports.LedgerService, catalog ports.CatalogService, identities ports.IdentityService) *ReservationHandler {
	return &ReservationHandler{ledger: ledger, catalog: catalog, identities: identities}
}

// Create reserves a slot at a facility for the caller.
//
// @Summary      Reserve a slot
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createReservationRequest  true  "Facility, date and slot label"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	facility, err := h.catalog.Facility(ctx, req.FacilityID)
	if err != nil {
		metrics.ReservationsTotal.WithLabelValues(resultLabel(err, "created")).Inc()
		return err
	}

	reservation, err := h.ledger.Reserve(ctx, identity, facility, req.Date, req.TimeLabel)
	metrics.ReservationsTotal.WithLabelValues(resultLabel(err, "created")).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reservation)
}

// ListMine returns the caller's reservations in booking order.
//
// @Summary      List my reservations
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  reservationListResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/reservations/me [get]
func (h *ReservationHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c, h.identities)
	if err != nil {
		return err
	}
	items := collectReservations(h.ledger.ListReservationsFor(c.Request().Context(), identity))
	return c.JSON(http.StatusOK, reservationListResponse{Items: items, Total: len(items)})
}
