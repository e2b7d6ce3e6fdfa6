package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ServiceGetter interface {
	GetService(ctx context.Context, id string) (*catalog.Service, error)
}

type AvailabilityResult struct {
	ServiceID string   `json:"service_id"`
	Date      string   `json:"date"`
	Times     []string `json:"times"`
}

type GetAvailability struct {
	services ServiceGetter
	reader   domain.Reader
	calc     *domain.Calculator
	loc      *time.Location
	now      func() time.Time
}

func NewGetAvailability(
	services ServiceGetter,
	reader domain.Reader,
	calc *domain.Calculator,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		services: services,
		reader:   reader,
		calc:     calc,
		loc:      loc,
		now:      func() time.Time { return timezone.NowIn(loc) },
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID string,
	date string,
) (*AvailabilityResult, error) {

	day, err := timezone.ParseDate(date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	if _, err := uc.services.GetService(ctx, serviceID); err != nil {
		return nil, err
	}

	start, end := timezone.DayRange(day)
	bookings, err := uc.reader.FindBookingsByServiceAndDayRange(ctx, serviceID, start, end)
	if err != nil {
		return nil, err
	}

	booked := make([]time.Time, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.Date)
	}

	return &AvailabilityResult{
		ServiceID: serviceID,
		Date:      date,
		Times:     uc.calc.Available(day, booked, uc.now()),
	}, nil
}
