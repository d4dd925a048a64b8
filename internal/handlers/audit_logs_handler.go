package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	entity := strings.TrimSpace(c.Query("entity"))

	q := h.db.Session(&gorm.Session{})
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Error al listar la auditoría.")
		return
	}

	c.JSON(http.StatusOK, logs)
}
