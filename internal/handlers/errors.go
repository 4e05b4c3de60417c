package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

const stackLines = 12

type errorInfo struct {
	status  int
	message string
}

var businessErrors = map[string]errorInfo{
	"invalid_format":          {http.StatusBadRequest, "Data ou hora em formato inválido."},
	"out_of_range":            {http.StatusBadRequest, "Horário fora do dia."},
	"invalid_range":           {http.StatusBadRequest, "O início precisa ser antes do fim."},
	"invalid_actor":           {http.StatusBadRequest, "Origem do cancelamento inválida."},
	"too_soon":                {http.StatusBadRequest, "Horário inválido."},
	"invalid_reminder_hours":  {http.StatusBadRequest, "Lembrete deve ser entre 3 e 24 horas."},
	"invalid_repeat_type":     {http.StatusBadRequest, "Recorrência inválida."},
	"invalid_repeat_interval": {http.StatusBadRequest, "Intervalo de recorrência inválido."},
	"invalid_amount":          {http.StatusBadRequest, "Valor deve ser positivo."},
	"invalid_title":           {http.StatusBadRequest, "Título obrigatório."},
	"invalid_end_date":        {http.StatusBadRequest, "Data final antes do início."},

	"appointment_not_found":       {http.StatusNotFound, "Agendamento não encontrado."},
	"barbershop_not_found":        {http.StatusNotFound, "Barbearia não encontrada."},
	"barber_not_found":            {http.StatusNotFound, "Barbeiro não encontrado."},
	"recurring_expense_not_found": {http.StatusNotFound, "Despesa recorrente não encontrada."},

	"time_conflict":      {http.StatusConflict, "Conflito de horário."},
	"blackout_conflict":  {http.StatusConflict, "Horário fechado pela barbearia."},
	"invalid_transition": {http.StatusConflict, "O agendamento não permite essa ação no estado atual."},
}

// writeError traduz erros de negócio em status e error_code estáveis.
func writeError(c *gin.Context, err error) {
	var bulk *ucAppointment.BulkCancelError
	if errors.As(err, &bulk) {
		httperr.WriteDetails(c, http.StatusConflict, "bulk_cancel_failed",
			"Nenhum agendamento foi cancelado.",
			map[string]any{"failed_ids": bulk.FailedIDs()},
		)
		return
	}

	if code := httperr.Code(err); code != "" {
		info, ok := businessErrors[code]
		if !ok {
			info = errorInfo{http.StatusBadRequest, "Requisição inválida."}
		}
		httperr.Write(c, info.status, code, info.message)
		return
	}

	if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
		httperr.Conflict(c, "conflict", "Registro em conflito.")
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"path", c.FullPath(),
		"error", err,
		"stack", errs.ExtractStackLines(err, stackLines),
	)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

func adminID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

func barbershopID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextBarbershopID).(uint)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// queryUint devolve 0 quando o parâmetro não foi enviado.
func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return 0, false
	}
	return uint(v), true
}
