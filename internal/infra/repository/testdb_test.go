package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

type fixture struct {
	user    models.User
	shop    models.Barbershop
	haircut models.BarbershopService
	beard   models.BarbershopService
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		user: models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"},
		shop: models.Barbershop{Name: "Vintage Barber", Address: "Rua A, 10", Phones: "(11) 9999-0000, (11) 8888-0000"},
	}
	require.NoError(t, db.Create(&f.user).Error)
	require.NoError(t, db.Create(&f.shop).Error)

	f.haircut = models.BarbershopService{BarbershopID: f.shop.ID, Name: "Corte de Cabelo", Price: 60}
	f.beard = models.BarbershopService{BarbershopID: f.shop.ID, Name: "Barba", Price: 40}
	require.NoError(t, db.Create(&f.haircut).Error)
	require.NoError(t, db.Create(&f.beard).Error)

	return f
}
