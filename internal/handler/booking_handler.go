package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/service"
)

// ClaimedEmailKey is the echo context key under which the auth middleware
// stores the token's email claim.
const ClaimedEmailKey = "claimedEmail"

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a booking request.
type BookingRequest struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	TreatmentTitle  string `json:"treatmentTitle" validate:"required"`
	Slot            string `json:"slot" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Patient         string `json:"patient"`
	Phone           string `json:"phone"`
}

// Book godoc
// @Summary Book an appointment slot
// @Description Persists the booking unless one already exists for the same date, patient and treatment. A duplicate returns 200 with acknowledged=false.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body BookingRequest true "Booking document"
// @Success 200 {object} service.BookResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookingAppointments [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.bookingService.Book(c.Request().Context(), &model.Booking{
		AppointmentDate: req.AppointmentDate,
		TreatmentTitle:  req.TreatmentTitle,
		Slot:            req.Slot,
		Email:           req.Email,
		Patient:         req.Patient,
		Phone:           req.Phone,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// ListBookings godoc
// @Summary List the caller's bookings
// @Description The email query parameter must match the token's email claim.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string true "Patient email"
// @Success 200 {array} model.Booking
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	claimedEmail, _ := c.Get(ClaimedEmailKey).(string)
	if claimedEmail == "" || claimedEmail != email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
	}

	bookings, err := h.bookingService.ListByEmail(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookings)
}
