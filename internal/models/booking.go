package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID string            `gorm:"type:uuid;index:idx_bookings_service_date;not null" json:"service_id"`
	Service   BarbershopService `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date time.Time `gorm:"index:idx_bookings_service_date;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All rows migrated at startup, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Barbershop{},
		&BarbershopService{},
		&Booking{},
	}
}
