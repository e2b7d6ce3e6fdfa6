package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
)

type mockStore struct {
	insertFunc func(ctx context.Context, userID, serviceID string, date time.Time) (*domain.Booking, error)
	findFunc   func(ctx context.Context, serviceID string, start, end time.Time) ([]domain.Booking, error)
	listFunc   func(ctx context.Context, userID string, from time.Time) ([]domain.BookingDetails, error)

	inserts int
}

func (m *mockStore) InsertBooking(ctx context.Context, userID, serviceID string, date time.Time) (*domain.Booking, error) {
	m.inserts++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, userID, serviceID, date)
	}
	return &domain.Booking{ID: "b-1", UserID: userID, ServiceID: serviceID, Date: date}, nil
}

func (m *mockStore) FindBookingsByServiceAndDayRange(ctx context.Context, serviceID string, start, end time.Time) ([]domain.Booking, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, serviceID, start, end)
	}
	return nil, nil
}

func (m *mockStore) ListUserBookingsFrom(ctx context.Context, userID string, from time.Time) ([]domain.BookingDetails, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, from)
	}
	return nil, nil
}

type recordingInvalidator struct {
	mu   sync.Mutex
	keys []domain.ViewKey
}

func (r *recordingInvalidator) Invalidate(_ context.Context, key domain.ViewKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
}

type mockServices struct {
	getFunc func(ctx context.Context, id string) (*catalog.Service, error)
}

func (m *mockServices) GetService(ctx context.Context, id string) (*catalog.Service, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &catalog.Service{ID: id, Name: "Corte"}, nil
}
