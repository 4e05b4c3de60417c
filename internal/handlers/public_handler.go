package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type ShopResolver interface {
	GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error)
}

type PublicHandler struct {
	shops        ShopResolver
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
}

func NewPublicHandler(
	shops ShopResolver,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
) *PublicHandler {
	return &PublicHandler{
		shops:        shops,
		availability: availability,
		create:       create,
		cancel:       cancel,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	BarberID    uint    `json:"barber_id" binding:"required"`
	ClientName  string  `json:"client_name" binding:"required"`
	ClientPhone string  `json:"client_phone" binding:"required"`
	Date        string  `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime   string  `json:"start_time" binding:"required"` // HH:MM
	EndTime     *string `json:"end_time"`
	Notes       string  `json:"notes"`
}

type PublicCancelRequest struct {
	ClientPhone string `json:"client_phone" binding:"required"`
}

func (h *PublicHandler) shop(c *gin.Context) (*models.Barbershop, bool) {
	shop, err := h.shops.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return shop, true
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shop(c)
	if !ok {
		return
	}

	barberID, ok := queryUint(c, "barber_id")
	if !ok {
		return
	}
	date := c.Query("date")
	if barberID == 0 || date == "" {
		httperr.BadRequest(c, "missing_params", "barber_id e date são obrigatórios.")
		return
	}

	slotMinutes := 0
	if raw := c.Query("slot_minutes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > 240 {
			httperr.BadRequest(c, "invalid_slot_minutes", "Duração de slot inválida.")
			return
		}
		slotMinutes = v
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     barberID,
		Date:         date,
		SlotMinutes:  slotMinutes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	shop, ok := h.shop(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: shop.ID,
		BarberID:     req.BarberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ucAppointment.ToListDTO(ap))
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	shop, ok := h.shop(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelInput{
		BarbershopID:  shop.ID,
		AppointmentID: id,
		By:            domain.CancelledByCustomer,
		ClientPhone:   req.ClientPhone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
	})
}
