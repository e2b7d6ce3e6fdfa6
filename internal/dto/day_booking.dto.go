package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// DayBookingDTO is the public view of a booking; it never names the customer.
type DayBookingDTO struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	Date      time.Time `json:"date"`
}

func FromBookings(bookings []booking.Booking) []DayBookingDTO {
	out := make([]DayBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, DayBookingDTO{
			ID:        b.ID,
			ServiceID: b.ServiceID,
			Date:      b.Date,
		})
	}
	return out
}
