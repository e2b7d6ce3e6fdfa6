package booking

import "time"

// Booking is a reserved appointment of a user for a service at a date-time.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ServiceID string    `json:"service_id"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the authenticated caller. A nil *Identity means anonymous.
type Identity struct {
	UserID string
	Role   string
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.UserID != ""
}

type BookingDetails struct {
	Booking

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceImageURL string  `json:"service_image_url"`

	BarbershopID       string `json:"barbershop_id"`
	BarbershopName     string `json:"barbershop_name"`
	BarbershopAddress  string `json:"barbershop_address"`
	BarbershopImageURL string `json:"barbershop_image_url"`
}
