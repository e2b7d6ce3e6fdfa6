package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
)

type Home struct {
	Recommended []domain.Barbershop        `json:"recommended"`
	Popular     []domain.Barbershop        `json:"popular"`
	QuickSearch []domain.QuickSearchOption `json:"quick_search"`
}

type ListBarbershops struct {
	store domain.Store
}

func NewListBarbershops(store domain.Store) *ListBarbershops {
	return &ListBarbershops{store: store}
}

func (uc *ListBarbershops) Execute(ctx context.Context) (*Home, error) {
	recommended, err := uc.store.ListBarbershops(ctx, domain.OrderRecommended)
	if err != nil {
		return nil, err
	}

	popular, err := uc.store.ListBarbershops(ctx, domain.OrderPopular)
	if err != nil {
		return nil, err
	}

	return &Home{
		Recommended: recommended,
		Popular:     popular,
		QuickSearch: domain.QuickSearchOptions(),
	}, nil
}
