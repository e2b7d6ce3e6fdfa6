package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var businessStatus = map[string]int{
	"unauthenticated":      http.StatusUnauthorized,
	"service_not_found":    http.StatusNotFound,
	"barbershop_not_found": http.StatusNotFound,
	"invalid_date":         http.StatusBadRequest,
	"invalid_date_or_time": http.StatusBadRequest,
	"invalid_selection":    http.StatusBadRequest,
}

var businessMessage = map[string]string{
	"unauthenticated":      "Faça login para continuar.",
	"service_not_found":    "Serviço não encontrado.",
	"barbershop_not_found": "Barbearia não encontrada.",
	"invalid_date":         "Data inválida.",
	"invalid_date_or_time": "Data ou hora inválida.",
	"invalid_selection":    "Selecione um serviço, uma data e um horário.",
}

// respondError writes business errors with their own code and everything
// else as a logged 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackCode string) {
	if code := httperr.Code(err); code != "" {
		status, ok := businessStatus[code]
		if !ok {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, businessMessage[code])
		return
	}

	logger.Error("request failed",
		"path", c.FullPath(),
		"code", fallbackCode,
		"error", err,
	)
	httperr.Internal(c, fallbackCode, "Erro interno. Tente novamente.")
}
