package dto

type ConfirmedSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AppointmentListDTO struct {
	ID       uint   `json:"id"`
	BarberID uint   `json:"barber_id"`
	Date     string `json:"date"`

	RequestedStart string  `json:"requested_start"`
	RequestedEnd   *string `json:"requested_end"`

	ConfirmedSlot *ConfirmedSlotDTO `json:"confirmed_slot,omitempty"`

	Status      string  `json:"status"`
	CancelledBy *string `json:"cancelled_by,omitempty"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes,omitempty"`
}
