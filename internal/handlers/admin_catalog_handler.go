package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const maxImageBytes = 5 << 20

type ImageUploader interface {
	UploadImage(ctx context.Context, prefix string, r io.Reader) (string, error)
}

// AdminCatalogHandler maintains barbershops and their services.
type AdminCatalogHandler struct {
	db       *gorm.DB
	uploader ImageUploader
	logger   *slog.Logger
}

// NewAdminCatalogHandler accepts a nil uploader when image storage is off.
func NewAdminCatalogHandler(db *gorm.DB, uploader ImageUploader, logger *slog.Logger) *AdminCatalogHandler {
	return &AdminCatalogHandler{db: db, uploader: uploader, logger: logger}
}

// --------- Requests ---------

type CreateBarbershopRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Phones      []string `json:"phones"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// --------- Handlers ---------

func (h *AdminCatalogHandler) CreateBarbershop(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	shop := models.Barbershop{
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Phones:      repository.JoinPhones(req.Phones),
	}

	if err := h.db.Create(&shop).Error; err != nil {
		respondError(c, h.logger, err, "failed_to_create_barbershop")
		return
	}

	c.JSON(http.StatusCreated, shop)
}

func (h *AdminCatalogHandler) CreateService(c *gin.Context) {
	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		respondError(c, h.logger, err, "failed_to_get_barbershop")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	service := models.BarbershopService{
		BarbershopID: shop.ID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
	}

	if err := h.db.Create(&service).Error; err != nil {
		respondError(c, h.logger, err, "failed_to_create_service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *AdminCatalogHandler) UpdateService(c *gin.Context) {
	service, ok := h.loadService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}

	if err := h.db.Save(service).Error; err != nil {
		respondError(c, h.logger, err, "failed_to_update_service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// UploadServiceImage stores the multipart "image" field as WebP and points
// the service at it.
func (h *AdminCatalogHandler) UploadServiceImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.ServiceUnavailable(c, "image_storage_disabled", "Armazenamento de imagens indisponível.")
		return
	}

	service, ok := h.loadService(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Envie a imagem no campo \"image\".")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "services/"+service.ID, f)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
			return
		}
		respondError(c, h.logger, err, "failed_to_upload_image")
		return
	}

	if err := h.db.Model(service).Update("image_url", url).Error; err != nil {
		respondError(c, h.logger, err, "failed_to_update_service")
		return
	}
	service.ImageURL = url

	c.JSON(http.StatusOK, service)
}

func (h *AdminCatalogHandler) loadService(c *gin.Context) (*models.BarbershopService, bool) {
	var service models.BarbershopService
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return nil, false
		}
		respondError(c, h.logger, err, "failed_to_get_service")
		return nil, false
	}
	return &service, true
}
