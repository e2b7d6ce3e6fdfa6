package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

// Infra holds the optional integrations built in main. A nil ViewCache or
// Uploader disables that integration. Invalidator receives the signal after
// the view cache, when enabled, has already been invalidated in line.
type Infra struct {
	Logger      *slog.Logger
	Invalidator booking.Invalidator
	ViewCache   *cache.ViewCache
	Uploader    handlers.ImageUploader
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	logger := infra.Logger
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	var bookingReader booking.Reader = bookingRepo
	invalidator := infra.Invalidator
	if infra.ViewCache != nil {
		bookingReader = cache.NewCachedReader(bookingRepo, infra.ViewCache, logger)
		invalidator = cache.NewViewInvalidator(infra.ViewCache, infra.Invalidator, logger)
	}

	matchMode, err := booking.ParseMatchMode(cfg.SlotMatchMode)
	if err != nil {
		logger.Warn("unknown slot match mode, using loose", "value", cfg.SlotMatchMode)
	}
	calculator := booking.NewCalculator(matchMode)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		catalogRepo,
		bookingRepo,
		invalidator,
		loc,
		logger,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		catalogRepo,
		bookingReader,
		calculator,
		loc,
	)

	dayBookingsUC := ucBooking.NewListDayBookings(bookingReader, loc)
	confirmedBookingsUC := ucBooking.NewListConfirmedBookings(bookingRepo, loc)

	// ======================================================
	// 🧠 USE CASES — CATALOG
	// ======================================================
	listBarbershopsUC := ucCatalog.NewListBarbershops(catalogRepo)
	searchBarbershopsUC := ucCatalog.NewSearchBarbershops(catalogRepo)
	getBarbershopUC := ucCatalog.NewGetBarbershop(catalogRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, logger)
	meHandler := handlers.NewMeHandler(db, confirmedBookingsUC, logger)

	catalogHandler := handlers.NewCatalogHandler(
		listBarbershopsUC,
		searchBarbershopsUC,
		getBarbershopUC,
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		availabilityUC,
		dayBookingsUC,
		loc,
		logger,
	)

	adminCatalogHandler := handlers.NewAdminCatalogHandler(db, infra.Uploader, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/quick-search", catalogHandler.QuickSearch)
		api.GET("/barbershops", catalogHandler.Home)
		api.GET("/barbershops/search", catalogHandler.Search)
		api.GET("/barbershops/:id", catalogHandler.Get)

		api.GET("/services/:id/bookings", bookingHandler.DayBookings)
		api.GET("/services/:id/availability", bookingHandler.Availability)

		// anonymous callers reach the handler and get "unauthenticated"
		api.POST("/bookings", middleware.OptionalAuthMiddleware(cfg), bookingHandler.Create)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", meHandler.ListBookings)
		}

		// ------------------------------
		// 🛠️ ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/barbershops", adminCatalogHandler.CreateBarbershop)
			admin.POST("/barbershops/:id/services", adminCatalogHandler.CreateService)
			admin.PATCH("/services/:id", adminCatalogHandler.UpdateService)
			admin.PUT("/services/:id/image", adminCatalogHandler.UploadServiceImage)
		}
	}
}
