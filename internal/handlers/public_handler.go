package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
	"github.com/BellaEstudioDev/salon-agenda/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *appointment.GetAvailability
	create       *appointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *appointment.GetAvailability,
	create *appointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

////////////////////////////////////////////////////////
// SERVICIOS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar los servicios.")
		return
	}

	c.JSON(http.StatusOK, services)
}

////////////////////////////////////////////////////////
// DISPONIBILIDAD
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y servicio son obligatorios.")
		return
	}

	if !isValidDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		agenda.AvailabilityInput{
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Servicio inválido.")
			return
		}
		if httperr.IsBusiness(err, "invalid_input") {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}

		httperr.Internal(c, "availability_failed", "Error al calcular los horarios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// RESERVA
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		appointment.CreateAppointmentInput{
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Name:      req.Name,
			Phone:     req.Phone,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// mapCreateErrors traduce el rechazo del use case a la respuesta HTTP.
// Todo rechazo de negocio llega con su motivo; solo lo inesperado es 500.
func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_input"):
		httperr.BadRequest(c, "invalid_input", "Datos inválidos.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio inválido.")

	case httperr.IsBusiness(err, "out_of_hours"):
		httperr.BadRequest(c, "out_of_hours", "Horario fuera de atención.")

	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "El horario ya está reservado.")

	default:
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
	}
}

////////////////////////////////////////////////////////
// GALERÍA
////////////////////////////////////////////////////////

func (h *PublicHandler) ListGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Order("created_at DESC").
		Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Error al listar la galería.")
		return
	}

	c.JSON(http.StatusOK, images)
}

////////////////////////////////////////////////////////
// CONTACTO
////////////////////////////////////////////////////////

func (h *PublicHandler) GetContact(c *gin.Context) {
	var info models.ContactInfo
	if err := h.db.First(&info).Error; err != nil {
		httperr.NotFound(c, "contact_not_found", "Datos de contacto no disponibles.")
		return
	}

	c.JSON(http.StatusOK, info)
}
