package booking

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID string
	Date      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	services    ServiceGetter
	store       domain.Store
	invalidator domain.Invalidator
	loc         *time.Location
	logger      *slog.Logger
}

func NewCreateBooking(
	services ServiceGetter,
	store domain.Store,
	invalidator domain.Invalidator,
	loc *time.Location,
	logger *slog.Logger,
) *CreateBooking {
	return &CreateBooking{
		services:    services,
		store:       store,
		invalidator: invalidator,
		loc:         loc,
		logger:      logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute inserts the booking without checking whether the slot is still
// free. Two callers that both saw the slot as available will both succeed.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	identity *domain.Identity,
	in CreateBookingInput,
) (*domain.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Identidade
	// --------------------------------------------------
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	// --------------------------------------------------
	// 2️⃣ Seleção
	// --------------------------------------------------
	if in.ServiceID == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidSelection
	}
	date := in.Date.In(uc.loc).Truncate(time.Minute)

	// --------------------------------------------------
	// 3️⃣ Serviço
	// --------------------------------------------------
	if _, err := uc.services.GetService(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	b, err := uc.store.InsertBooking(ctx, identity.UserID, in.ServiceID, date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Invalidação da agenda do dia
	// --------------------------------------------------
	uc.invalidator.Invalidate(ctx, domain.DayBookingsView(in.ServiceID, date))

	uc.logger.Info("booking created",
		"booking_id", b.ID,
		"user_id", b.UserID,
		"service_id", b.ServiceID,
		"date", b.Date,
	)

	return b, nil
}
