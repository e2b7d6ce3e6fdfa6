package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ListConfirmedBookings lists the caller's upcoming bookings.
type ListConfirmedBookings struct {
	store domain.Store
	now   func() time.Time
}

func NewListConfirmedBookings(store domain.Store, loc *time.Location) *ListConfirmedBookings {
	return &ListConfirmedBookings{
		store: store,
		now:   func() time.Time { return timezone.NowIn(loc) },
	}
}

func (uc *ListConfirmedBookings) Execute(
	ctx context.Context,
	identity *domain.Identity,
) ([]dto.BookingListDTO, error) {

	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	bookings, err := uc.store.ListUserBookingsFrom(ctx, identity.UserID, uc.now())
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.FromBookingDetails(b))
	}
	return out, nil
}
