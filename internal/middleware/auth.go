package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return authenticate(cfg, true)
}

// OptionalAuthMiddleware lets anonymous requests through. A token that is
// present but invalid is still rejected.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return authenticate(cfg, false)
}

func authenticate(cfg *config.Config, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Autenticação necessária.")
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida ou expirada.")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// IdentityFrom returns the caller identity set by the auth middlewares, or
// nil for anonymous requests.
func IdentityFrom(c *gin.Context) *booking.Identity {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return nil
	}
	return &booking.Identity{
		UserID: userID,
		Role:   c.GetString(ContextUserRole),
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ContextUserRole)]; !ok {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "Acesso negado.")
			return
		}
		c.Next()
	}
}
