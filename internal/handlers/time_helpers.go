package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// parseSlot joins a YYYY-MM-DD date and an HH:MM time in the app time zone.
func parseSlot(loc *time.Location, date, hm string) (time.Time, error) {
	t, err := timezone.ParseDateTime(date, hm, loc)
	if err != nil {
		return time.Time{}, booking.ErrInvalidDateOrTime
	}
	return t, nil
}
