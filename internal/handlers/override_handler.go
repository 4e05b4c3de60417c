package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type OverrideHandler struct {
	create *ucAppointment.CreateOverride
	list   *ucAppointment.ListOverrides
}

func NewOverrideHandler(
	create *ucAppointment.CreateOverride,
	list *ucAppointment.ListOverrides,
) *OverrideHandler {
	return &OverrideHandler{create: create, list: list}
}

type CreateOverrideRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

// Create fecha a janela e devolve os cancelados e o resultado dos avisos.
func (h *OverrideHandler) Create(c *gin.Context) {
	var req CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateOverrideInput{
		BarbershopID: barbershopID(c),
		BarberID:     req.BarberID,
		AdminID:      adminID(c),
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *OverrideHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	barberID, ok := queryUint(c, "barber_id")
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), barbershopID(c), barberID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}
