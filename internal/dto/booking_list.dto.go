package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type BookingListDTO struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`

	Service    BookingServiceDTO    `json:"service"`
	Barbershop BookingBarbershopDTO `json:"barbershop"`
}

type BookingServiceDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type BookingBarbershopDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
}

func FromBookingDetails(b booking.BookingDetails) BookingListDTO {
	return BookingListDTO{
		ID:   b.ID,
		Date: b.Date,
		Service: BookingServiceDTO{
			ID:       b.ServiceID,
			Name:     b.ServiceName,
			Price:    b.ServicePrice,
			ImageURL: b.ServiceImageURL,
		},
		Barbershop: BookingBarbershopDTO{
			ID:       b.BarbershopID,
			Name:     b.BarbershopName,
			Address:  b.BarbershopAddress,
			ImageURL: b.BarbershopImageURL,
		},
	}
}
