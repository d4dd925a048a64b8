package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/httpresp"
	"github.com/BellaEstudioDev/salon-agenda/internal/middleware"
	"github.com/BellaEstudioDev/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER (panel de administración)
// ======================================================

type AppointmentHandler struct {
	listByDate *appointment.ListAppointmentsByDate
	confirm    *appointment.ConfirmAppointment
	cancel     *appointment.CancelAppointment
	remove     *appointment.DeleteAppointment
}

func NewAppointmentHandler(
	listByDate *appointment.ListAppointmentsByDate,
	confirm *appointment.ConfirmAppointment,
	cancel *appointment.CancelAppointment,
	remove *appointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate: listByDate,
		confirm:    confirm,
		cancel:     cancel,
		remove:     remove,
	}
}

// ======================================================
// HELPERS
// ======================================================

func adminActor(c *gin.Context) string {
	if email, ok := c.Get(middleware.ContextAdminEmail); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return "admin"
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if !isValidDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_input") {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar las citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), adminActor(c), id)
	if err != nil {
		mapStatusChangeErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), adminActor(c), id)
	if err != nil {
		mapStatusChangeErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), adminActor(c), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Error al eliminar la cita.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada."})
}

func mapStatusChangeErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La cita no admite ese cambio de estado.")

	default:
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
	}
}
