package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// BookingHandler serves the bookings screen.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func bookingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "booking id must be numeric")
	}
	return id, nil
}

// List handles GET /v1/bookings.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status       query     string  false  "Filter by status"  Enums(pending, confirmed, completed, cancelled)
// @Param        provider_id  query     string  false  "Filter by provider"
// @Success      200          {array}   domain.Booking
// @Failure      502          {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.ListBookings(c.Request().Context(), ports.ListBookingsInput{
		Status:     c.QueryParam("status"),
		ProviderID: c.QueryParam("provider_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /v1/bookings/:id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	booking, err := h.service.GetBooking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// UpdateStatus handles PATCH /v1/bookings/:id/status. Transitions outside the
// booking state machine are rejected with 422.
//
// @Summary      Move a booking to a new status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateBookingStatus(c.Request().Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
