package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
	ucExpense "github.com/BruksfildServices01/barber-booking/internal/usecase/expense"
)

type ExpenseHandler struct {
	create    *ucExpense.CreateRecurring
	list      *ucExpense.ListRecurring
	utcOffset int
}

func NewExpenseHandler(
	create *ucExpense.CreateRecurring,
	list *ucExpense.ListRecurring,
	utcOffset int,
) *ExpenseHandler {
	return &ExpenseHandler{create: create, list: list, utcOffset: utcOffset}
}

// Amount chega como string para não perder centavos no float do JSON.
type CreateRecurringExpenseRequest struct {
	Title          string `json:"title" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	Category       string `json:"category"`
	RepeatType     string `json:"repeat_type" binding:"required"`
	RepeatInterval int    `json:"repeat_interval"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
}

func (h *ExpenseHandler) CreateRecurring(c *gin.Context) {
	var req CreateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		httperr.BadRequest(c, "invalid_amount", "Valor inválido.")
		return
	}

	// Ocorrências caem na meia-noite local da barbearia.
	start, err := timeofday.LocalCivilToInstant(req.StartDate, "00:00", h.utcOffset)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "Data inicial inválida.")
		return
	}

	interval := req.RepeatInterval
	if interval == 0 {
		interval = 1
	}

	in := ucExpense.CreateRecurringInput{
		BarbershopID:   barbershopID(c),
		AdminID:        adminID(c),
		Title:          req.Title,
		Amount:         amount,
		Category:       req.Category,
		RepeatType:     req.RepeatType,
		RepeatInterval: interval,
		StartDate:      start,
	}

	if req.EndDate != "" {
		end, err := timeofday.LocalCivilToInstant(req.EndDate, "00:00", h.utcOffset)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
			return
		}
		in.EndDate = &end
	}

	def, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, def)
}

func (h *ExpenseHandler) ListRecurring(c *gin.Context) {
	defs, err := h.list.Execute(c.Request.Context(), barbershopID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, defs)
}
