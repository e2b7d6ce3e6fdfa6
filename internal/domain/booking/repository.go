package booking

import (
	"context"
	"time"
)

// Reader is the read side of the booking store.
type Reader interface {
	FindBookingsByServiceAndDayRange(
		ctx context.Context,
		serviceID string,
		start time.Time,
		end time.Time,
	) ([]Booking, error)
}

type Store interface {
	Reader

	// InsertBooking stores a single row. No slot uniqueness is enforced here.
	InsertBooking(
		ctx context.Context,
		userID string,
		serviceID string,
		date time.Time,
	) (*Booking, error)

	ListUserBookingsFrom(
		ctx context.Context,
		userID string,
		from time.Time,
	) ([]BookingDetails, error)
}

// ViewKey names a cached view that must be recomputed after a write.
type ViewKey string

func DayBookingsView(serviceID string, day time.Time) ViewKey {
	return ViewKey("bookings:" + serviceID + ":" + day.Format("2006-01-02"))
}

// Invalidator receives stale-view signals. Delivery is best effort.
type Invalidator interface {
	Invalidate(ctx context.Context, key ViewKey)
}
