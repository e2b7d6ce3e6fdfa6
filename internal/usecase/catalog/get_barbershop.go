package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
)

type GetBarbershop struct {
	store domain.Store
}

func NewGetBarbershop(store domain.Store) *GetBarbershop {
	return &GetBarbershop{store: store}
}

func (uc *GetBarbershop) Execute(ctx context.Context, id string) (*domain.Barbershop, error) {
	return uc.store.GetBarbershop(ctx, id)
}
