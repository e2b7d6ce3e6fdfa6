package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	usecase "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *usecase.CreateBooking
	availability *usecase.GetAvailability
	dayBookings  *usecase.ListDayBookings
	loc          *time.Location
	logger       *slog.Logger
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	availability *usecase.GetAvailability,
	dayBookings *usecase.ListDayBookings,
	loc *time.Location,
	logger *slog.Logger,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		availability: availability,
		dayBookings:  dayBookings,
		loc:          loc,
		logger:       logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required,hhmm"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /api/services/:id/availability?date=YYYY-MM-DD
func (h *BookingHandler) Availability(c *gin.Context) {
	res, err := h.availability.Execute(
		c.Request.Context(),
		c.Param("id"),
		c.Query("date"),
	)
	if err != nil {
		respondError(c, h.logger, err, "failed_to_get_availability")
		return
	}

	httpresp.OK(c, res)
}

// GET /api/services/:id/bookings?date=YYYY-MM-DD
func (h *BookingHandler) DayBookings(c *gin.Context) {
	bookings, err := h.dayBookings.Execute(
		c.Request.Context(),
		c.Param("id"),
		c.Query("date"),
	)
	if err != nil {
		respondError(c, h.logger, err, "failed_to_list_bookings")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CREATE
// ======================================================

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	// --------------------------------------------------
	// 1️⃣ Sem sessão nada é validado nem gravado
	// --------------------------------------------------
	if !identity.Authenticated() {
		respondError(c, h.logger, domain.ErrUnauthenticated, "")
		return
	}

	// --------------------------------------------------
	// 2️⃣ Payload
	// --------------------------------------------------
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseSlot(h.loc, req.Date, req.Time)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	// --------------------------------------------------
	// 3️⃣ Reserva
	// --------------------------------------------------
	b, err := h.create.Execute(c.Request.Context(), identity, usecase.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      date,
	})
	if err != nil {
		respondError(c, h.logger, err, "failed_to_create_booking")
		return
	}

	httpresp.Created(c, b)
}
