package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	approve    *ucAppointment.ApproveAppointment
	reject     *ucAppointment.RejectAppointment
	cancel     *ucAppointment.CancelAppointment
	bulkCancel *ucAppointment.BulkCancelAppointments
	listByDate *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	approve *ucAppointment.ApproveAppointment,
	reject *ucAppointment.RejectAppointment,
	cancel *ucAppointment.CancelAppointment,
	bulkCancel *ucAppointment.BulkCancelAppointments,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		approve:    approve,
		reject:     reject,
		cancel:     cancel,
		bulkCancel: bulkCancel,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ApproveAppointmentRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type BulkCancelRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	barberID, ok := queryUint(c, "barber_id")
	if !ok {
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), barbershopID(c), barberID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ApproveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.approve.Execute(c.Request.Context(), barbershopID(c), adminID(c), id, req.StartTime, req.EndTime)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ucAppointment.ToListDTO(ap))
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.reject.Execute(c.Request.Context(), barbershopID(c), adminID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ucAppointment.ToListDTO(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelInput{
		BarbershopID:  barbershopID(c),
		AppointmentID: id,
		By:            domain.CancelledByAdmin,
		AdminID:       adminID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ucAppointment.ToListDTO(ap))
}

func (h *AppointmentHandler) BulkCancel(c *gin.Context) {
	var req BulkCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sum, err := h.bulkCancel.Execute(c.Request.Context(), barbershopID(c), adminID(c), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, sum)
}
