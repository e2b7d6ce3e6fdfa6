package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrBarbershopNotFound = httperr.ErrBusiness("barbershop_not_found")
	ErrServiceNotFound    = httperr.ErrBusiness("service_not_found")
)

type Order int

const (
	OrderRecommended Order = iota
	OrderPopular
)

type Store interface {
	ListBarbershops(ctx context.Context, order Order) ([]Barbershop, error)

	// SearchBarbershops matches title against the barbershop name OR service
	// against any of its service names, case-insensitively.
	SearchBarbershops(ctx context.Context, title, service string) ([]Barbershop, error)

	GetBarbershop(ctx context.Context, id string) (*Barbershop, error)

	GetService(ctx context.Context, id string) (*Service, error)
}
