package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *BookingGormRepository) InsertBooking(
	ctx context.Context,
	userID string,
	serviceID string,
	date time.Time,
) (*booking.Booking, error) {

	row := models.Booking{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      date,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	b := toBooking(row)
	return &b, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingGormRepository) FindBookingsByServiceAndDayRange(
	ctx context.Context,
	serviceID string,
	start time.Time,
	end time.Time,
) ([]booking.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "user_id", "service_id", "date", "created_at").
		Where(
			"service_id = ? AND date >= ? AND date < ?",
			serviceID, start, end,
		).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBooking(row))
	}
	return out, nil
}

func (r *BookingGormRepository) ListUserBookingsFrom(
	ctx context.Context,
	userID string,
	from time.Time,
) ([]booking.BookingDetails, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service.Barbershop").
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]booking.BookingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, booking.BookingDetails{
			Booking:            toBooking(row),
			ServiceName:        row.Service.Name,
			ServicePrice:       row.Service.Price,
			ServiceImageURL:    row.Service.ImageURL,
			BarbershopID:       row.Service.Barbershop.ID,
			BarbershopName:     row.Service.Barbershop.Name,
			BarbershopAddress:  row.Service.Barbershop.Address,
			BarbershopImageURL: row.Service.Barbershop.ImageURL,
		})
	}
	return out, nil
}

func toBooking(row models.Booking) booking.Booking {
	return booking.Booking{
		ID:        row.ID,
		UserID:    row.UserID,
		ServiceID: row.ServiceID,
		Date:      row.Date,
		CreatedAt: row.CreatedAt,
	}
}

// Compile-time check
var _ booking.Store = (*BookingGormRepository)(nil)
