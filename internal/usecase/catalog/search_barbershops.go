package catalog

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
)

type SearchBarbershops struct {
	store domain.Store
}

func NewSearchBarbershops(store domain.Store) *SearchBarbershops {
	return &SearchBarbershops{store: store}
}

// Execute matches title against barbershop names or service against service
// names. Without either filter every barbershop is returned.
func (uc *SearchBarbershops) Execute(
	ctx context.Context,
	title string,
	service string,
) ([]domain.Barbershop, error) {
	return uc.store.SearchBarbershops(ctx, strings.TrimSpace(title), strings.TrimSpace(service))
}
