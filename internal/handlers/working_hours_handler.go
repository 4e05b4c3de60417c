package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

type BarberLookup interface {
	GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error)
}

type WorkingHoursStore interface {
	ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, barberID uint, days []models.WorkingHours) error
}

type WorkingHoursHandler struct {
	barbers BarberLookup
	store   WorkingHoursStore
}

func NewWorkingHoursHandler(barbers BarberLookup, store WorkingHoursStore) *WorkingHoursHandler {
	return &WorkingHoursHandler{barbers: barbers, store: store}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	hours, err := h.store.ListWorkingHours(c.Request.Context(), barberID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	toCreate := make([]models.WorkingHours, 0, len(req.Days))

	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicated_weekday", "Dia da semana repetido.")
			return
		}
		seen[d.Weekday] = true

		if d.Active && !validWorkingDay(d) {
			httperr.BadRequest(c, "invalid_working_hours", "Horário de funcionamento inválido.")
			return
		}

		toCreate = append(toCreate, models.WorkingHours{
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	if err := h.store.ReplaceWorkingHours(c.Request.Context(), barberID, toCreate); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

// resolveBarber garante que o barbeiro da URL pertence à barbearia do token.
func (h *WorkingHoursHandler) resolveBarber(c *gin.Context) (uint, bool) {
	barberID, ok := paramID(c, "barber_id")
	if !ok {
		return 0, false
	}

	if _, err := h.barbers.GetBarber(c.Request.Context(), barbershopID(c), barberID); err != nil {
		writeError(c, err)
		return 0, false
	}
	return barberID, true
}

// validWorkingDay exige início < fim e, se houver almoço, que caiba no expediente.
func validWorkingDay(d WorkingDayConfig) bool {
	start, err1 := timeofday.ParseTimeToMinutes(d.StartTime)
	end, err2 := timeofday.ParseTimeToMinutes(d.EndTime)
	if err1 != nil || err2 != nil || start >= end {
		return false
	}

	if d.LunchStart == "" && d.LunchEnd == "" {
		return true
	}

	ls, err1 := timeofday.ParseTimeToMinutes(d.LunchStart)
	le, err2 := timeofday.ParseTimeToMinutes(d.LunchEnd)
	if err1 != nil || err2 != nil {
		return false
	}
	return start <= ls && ls < le && le <= end
}
