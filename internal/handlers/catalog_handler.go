package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	usecase "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

type CatalogHandler struct {
	list   *usecase.ListBarbershops
	search *usecase.SearchBarbershops
	get    *usecase.GetBarbershop
	logger *slog.Logger
}

func NewCatalogHandler(
	list *usecase.ListBarbershops,
	search *usecase.SearchBarbershops,
	get *usecase.GetBarbershop,
	logger *slog.Logger,
) *CatalogHandler {
	return &CatalogHandler{list: list, search: search, get: get, logger: logger}
}

// GET /api/barbershops
func (h *CatalogHandler) Home(c *gin.Context) {
	home, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed_to_list_barbershops")
		return
	}

	httpresp.OK(c, home)
}

// GET /api/barbershops/search?title=&service=
func (h *CatalogHandler) Search(c *gin.Context) {
	shops, err := h.search.Execute(
		c.Request.Context(),
		c.Query("title"),
		c.Query("service"),
	)
	if err != nil {
		respondError(c, h.logger, err, "failed_to_search_barbershops")
		return
	}

	httpresp.List(c, shops)
}

// GET /api/barbershops/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	shop, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "failed_to_get_barbershop")
		return
	}

	httpresp.OK(c, shop)
}

// GET /api/quick-search
func (h *CatalogHandler) QuickSearch(c *gin.Context) {
	httpresp.List(c, domain.QuickSearchOptions())
}
