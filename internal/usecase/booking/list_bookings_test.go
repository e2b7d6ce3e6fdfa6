package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

func TestListDayBookings(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	var gotStart, gotEnd time.Time
	store := &mockStore{
		findFunc: func(_ context.Context, _ string, start, end time.Time) ([]domain.Booking, error) {
			gotStart, gotEnd = start, end
			return []domain.Booking{{ID: "b-1", UserID: "user-1", ServiceID: "svc-1"}}, nil
		},
	}

	out, err := NewListDayBookings(store, saoPaulo).Execute(context.Background(), "svc-1", "2026-10-20")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b-1", out[0].ID)
	assert.Equal(t, "svc-1", out[0].ServiceID)
	assert.True(t, gotStart.Equal(time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, gotEnd.Sub(gotStart))

	_, err = NewListDayBookings(store, saoPaulo).Execute(context.Background(), "svc-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListConfirmedBookings(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	var gotUser string
	var gotFrom time.Time
	store := &mockStore{
		listFunc: func(_ context.Context, userID string, from time.Time) ([]domain.BookingDetails, error) {
			gotUser, gotFrom = userID, from
			return []domain.BookingDetails{{
				Booking:        domain.Booking{ID: "b-1", ServiceID: "svc-1", Date: now.Add(time.Hour)},
				ServiceName:    "Corte",
				BarbershopName: "Vintage",
			}}, nil
		},
	}
	uc := NewListConfirmedBookings(store, time.UTC)
	uc.now = fixedNow(now)

	out, err := uc.Execute(context.Background(), &domain.Identity{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "user-1", gotUser)
	assert.True(t, gotFrom.Equal(now))
	assert.Equal(t, "Corte", out[0].Service.Name)
	assert.Equal(t, "svc-1", out[0].Service.ID)
	assert.Equal(t, "Vintage", out[0].Barbershop.Name)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
