package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	availability service.AvailabilityService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(availability service.AvailabilityService) *SeedHandler {
	return &SeedHandler{availability: availability}
}

// SeedTreatmentsResponse represents the seed response.
type SeedTreatmentsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedTreatments godoc
// @Summary Seed the default treatment templates
// @Description Inserts the default catalogue only when the collection is empty.
// @Tags seed
// @Produce json
// @Success 200 {object} SeedTreatmentsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/treatments [get]
func (h *SeedHandler) SeedTreatments(c echo.Context) error {
	count, err := h.availability.SeedTreatments(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SeedTreatmentsResponse{
		Message: "treatments seeded successfully",
		Count:   count,
	})
}
