package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/service"
)

// AvailabilityHandler handles slot availability endpoints.
type AvailabilityHandler struct {
	availability service.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// List godoc
// @Summary List open appointment slots per treatment for a date
// @Tags availability
// @Produce json
// @Param date query string false "Appointment date"
// @Success 200 {array} model.Treatment
// @Failure 500 {object} errors.ErrorResponse
// @Router /availableAppointments [get]
func (h *AvailabilityHandler) List(c echo.Context) error {
	date := c.QueryParam("date")
	treatments, err := h.availability.AvailableAppointments(c.Request().Context(), date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, treatments)
}

// ListAggregated godoc
// @Summary List open slots per treatment, resolved store-side
// @Tags availability
// @Produce json
// @Param date query string false "Appointment date"
// @Success 200 {array} model.Treatment
// @Failure 500 {object} errors.ErrorResponse
// @Router /v2/availableAppointments [get]
func (h *AvailabilityHandler) ListAggregated(c echo.Context) error {
	date := c.QueryParam("date")
	treatments, err := h.availability.AvailableAppointmentsAggregated(c.Request().Context(), date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, treatments)
}
