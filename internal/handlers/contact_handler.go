package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
	"github.com/BellaEstudioDev/salon-agenda/internal/validators"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type UpdateContactRequest struct {
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Schedule *string `json:"schedule,omitempty"`
}

func (h *ContactHandler) Get(c *gin.Context) {
	var info models.ContactInfo
	if err := h.db.First(&info).Error; err != nil {
		httperr.NotFound(c, "contact_not_found", "Datos de contacto no disponibles.")
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var info models.ContactInfo
	if err := h.db.First(&info).Error; err != nil {
		httperr.NotFound(c, "contact_not_found", "Datos de contacto no disponibles.")
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != nil && *req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "El dominio del e-mail no parece válido.")
			return
		}
		info.Email = email
	}

	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
			return
		}
		info.Phone = strings.TrimSpace(*req.Phone)
	}

	if req.Address != nil {
		info.Address = *req.Address
	}
	if req.Schedule != nil {
		info.Schedule = *req.Schedule
	}

	if err := h.db.Save(&info).Error; err != nil {
		httperr.Internal(c, "failed_to_update_contact", "Error al guardar los datos de contacto.")
		return
	}

	c.JSON(http.StatusOK, info)
}
