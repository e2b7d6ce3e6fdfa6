package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListDayBookings struct {
	reader domain.Reader
	loc    *time.Location
}

func NewListDayBookings(reader domain.Reader, loc *time.Location) *ListDayBookings {
	return &ListDayBookings{reader: reader, loc: loc}
}

func (uc *ListDayBookings) Execute(
	ctx context.Context,
	serviceID string,
	date string,
) ([]dto.DayBookingDTO, error) {

	day, err := timezone.ParseDate(date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	start, end := timezone.DayRange(day)
	bookings, err := uc.reader.FindBookingsByServiceAndDayRange(ctx, serviceID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.FromBookings(bookings), nil
}
