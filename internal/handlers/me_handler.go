package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	usecase "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type MeHandler struct {
	db        *gorm.DB
	confirmed *usecase.ListConfirmedBookings
	logger    *slog.Logger
}

func NewMeHandler(db *gorm.DB, confirmed *usecase.ListConfirmedBookings, logger *slog.Logger) *MeHandler {
	return &MeHandler{db: db, confirmed: confirmed, logger: logger}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		httperr.Unauthorized(c, "unauthenticated", "Faça login para continuar.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		respondError(c, h.logger, err, "failed_to_get_user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

// ListBookings returns the caller's upcoming bookings, soonest first.
func (h *MeHandler) ListBookings(c *gin.Context) {
	out, err := h.confirmed.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, err, "failed_to_list_bookings")
		return
	}

	httpresp.List(c, out)
}
