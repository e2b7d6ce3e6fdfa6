package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (b *Barbershop) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

func (s *BarbershopService) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
