package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futsalhub/booking-system/internal/core/ports"
	"github.com/futsalhub/booking-system/internal/metrics"
)

type FacilityHandler struct {
	catalog    ports.CatalogService
	identities ports.IdentityService
}

func NewFacilityHandler(catalog ports.CatalogService, identities ports.IdentityService) *FacilityHandler {
	return &FacilityHandler{catalog: catalog, identities: identities}
}

// Create adds a facility owned by the caller.
//
// @Summary      Add a facility
// @Tags         facilities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createFacilityRequest  true  "Facility details"
// @Success      201   {object}  facilityResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/facilities [post]
func (h *FacilityHandler) Create(c echo.Context) error {
	owner, err := ctxIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req createFacilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	facility, err := h.catalog.AddFacility(c.Request().Context(), req.Name, req.Location, *req.HourlyRate, owner)
	if err != nil {
		return err
	}
	metrics.FacilitiesAddedTotal.Inc()

	return c.JSON(http.StatusCreated, toFacilityResponse(facility))
}

// List returns every facility in insertion order with its slot availability.
//
// @Summary      List facilities
// @Tags         facilities
// @Produce      json
// @Success      200   {object}  facilityListResponse
// @Router       /v1/facilities [get]
func (h *FacilityHandler) List(c echo.Context) error {
	items := collectFacilities(h.catalog.ListFacilities(c.Request().Context()))
	return c.JSON(http.StatusOK, facilityListResponse{Items: items, Total: len(items)})
}

// Get returns a single facility.
//
// @Summary      Get a facility
// @Tags         facilities
// @Produce      json
// @Param        id    path      string  true  "Facility ID"
// @Success      200   {object}  facilityResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/facilities/{id} [get]
func (h *FacilityHandler) Get(c echo.Context) error {
	facility, err := h.catalog.Facility(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFacilityResponse(facility))
}

// ListMine returns the facilities owned by the caller.
//
// @Summary      List my facilities
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  facilityListResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/owners/me/facilities [get]
func (h *FacilityHandler) ListMine(c echo.Context) error {
	owner, err := ctxIdentity(c, h.identities)
	if err != nil {
		return err
	}
	items := collectFacilities(h.catalog.ListFacilitiesByOwner(c.Request().Context(), owner))
	return c.JSON(http.StatusOK, facilityListResponse{Items: items, Total: len(items)})
}
