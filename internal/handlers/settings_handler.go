package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/settings"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
)

type SettingsHandler struct {
	store settings.Store
	audit audit.Recorder
}

func NewSettingsHandler(store settings.Store, audit audit.Recorder) *SettingsHandler {
	return &SettingsHandler{store: store, audit: audit}
}

type UpdateSettingsRequest struct {
	AdminPhone          string `json:"admin_phone"`
	CustomReminderHours *int   `json:"custom_reminder_hours"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.store.Get(c.Request.Context(), barbershopID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s := settings.Settings{
		AdminPhone:          sms.NormalizePhone(req.AdminPhone),
		CustomReminderHours: req.CustomReminderHours,
	}
	if err := s.Validate(); err != nil {
		writeError(c, err)
		return
	}

	shopID := barbershopID(c)
	if err := h.store.Save(c.Request.Context(), shopID, s); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Record(audit.Event{
		BarbershopID: shopID,
		Actor:        "admin",
		UserID:       adminID(c),
		Action:       "settings_updated",
		Entity:       "shop_settings",
		Metadata: map[string]any{
			"custom_reminder_hours": s.CustomReminderHours,
		},
	})

	httpresp.OK(c, s)
}
