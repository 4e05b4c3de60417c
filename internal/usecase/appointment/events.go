package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	ActorAdmin    = "admin"
	ActorCustomer = "customer"
	ActorSystem   = "system"
)

func appointmentEvent(
	ap *models.Appointment,
	actor string,
	userID *uint,
	action string,
	summary string,
	meta any,
) audit.Event {
	id := ap.ID
	return audit.Event{
		BarbershopID: ap.BarbershopID,
		Actor:        actor,
		UserID:       userID,
		Action:       action,
		Entity:       "appointment",
		EntityID:     &id,
		Summary:      summary,
		Metadata:     meta,
	}
}

// ToListDTO é usado pela listagem e pelas respostas dos handlers.
func ToListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	out := dto.AppointmentListDTO{
		ID:             ap.ID,
		BarberID:       ap.BarberID,
		Date:           ap.Date,
		RequestedStart: ap.RequestedStartTime,
		RequestedEnd:   ap.RequestedEndTime,
		Status:         ap.Status,
		CancelledBy:    ap.CancelledBy,
		ClientName:     ap.ClientName,
		ClientPhone:    ap.ClientPhone,
		Notes:          ap.Notes,
	}
	if ap.ConfirmedSlot != nil {
		out.ConfirmedSlot = &dto.ConfirmedSlotDTO{
			Start: ap.ConfirmedSlot.StartTime,
			End:   ap.ConfirmedSlot.EndTime,
		}
	}
	return out
}
