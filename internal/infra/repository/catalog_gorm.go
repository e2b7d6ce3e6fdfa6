package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barbershops
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbershops(
	ctx context.Context,
	order catalog.Order,
) ([]catalog.Barbershop, error) {

	orderClause := "created_at ASC, name ASC"
	if order == catalog.OrderPopular {
		orderClause = "name DESC"
	}

	var rows []models.Barbershop
	if err := r.db.WithContext(ctx).
		Order(orderClause).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return toBarbershops(rows), nil
}

func (r *CatalogGormRepository) SearchBarbershops(
	ctx context.Context,
	title string,
	service string,
) ([]catalog.Barbershop, error) {

	title = strings.ToLower(strings.TrimSpace(title))
	service = strings.ToLower(strings.TrimSpace(service))

	q := r.db.WithContext(ctx).Model(&models.Barbershop{})

	var conds []string
	var args []any
	if title != "" {
		conds = append(conds, `LOWER(name) LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(title))
	}
	if service != "" {
		conds = append(conds,
			`id IN (SELECT barbershop_id FROM barbershop_services WHERE LOWER(name) LIKE ? ESCAPE '\')`)
		args = append(args, containsPattern(service))
	}
	if len(conds) > 0 {
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	var rows []models.Barbershop
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	return toBarbershops(rows), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern matches s literally anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *CatalogGormRepository) GetBarbershop(
	ctx context.Context,
	id string,
) (*catalog.Barbershop, error) {

	var row models.Barbershop
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrBarbershopNotFound
	}
	if err != nil {
		return nil, err
	}

	shop := toBarbershop(row)
	shop.Services = make([]catalog.Service, 0, len(row.Services))
	for _, s := range row.Services {
		shop.Services = append(shop.Services, toService(s))
	}
	return &shop, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id string,
) (*catalog.Service, error) {

	var row models.BarbershopService
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	s := toService(row)
	return &s, nil
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toBarbershops(rows []models.Barbershop) []catalog.Barbershop {
	out := make([]catalog.Barbershop, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBarbershop(row))
	}
	return out
}

func toBarbershop(row models.Barbershop) catalog.Barbershop {
	return catalog.Barbershop{
		ID:          row.ID,
		Name:        row.Name,
		Address:     row.Address,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Phones:      SplitPhones(row.Phones),
	}
}

func toService(row models.BarbershopService) catalog.Service {
	return catalog.Service{
		ID:           row.ID,
		BarbershopID: row.BarbershopID,
		Name:         row.Name,
		Description:  row.Description,
		Price:        row.Price,
		ImageURL:     row.ImageURL,
	}
}

func SplitPhones(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinPhones(phones []string) string {
	clean := SplitPhones(strings.Join(phones, ","))
	return strings.Join(clean, ",")
}

var _ catalog.Store = (*CatalogGormRepository)(nil)
