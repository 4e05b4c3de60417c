package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusDone      Status = "done"
)

type CancelledBy string

const (
	CancelledByAdmin    CancelledBy = "admin"
	CancelledByCustomer CancelledBy = "customer"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled, StatusDone},
}

func InitialStatus() Status {
	return StatusPending
}

// IsActive indica se o agendamento ainda ocupa horário na agenda.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

func CanApprove(current Status) error {
	return CanTransition(current, StatusApproved)
}

func CanReject(current Status) error {
	return CanTransition(current, StatusRejected)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusDone)
}

func ValidCancelledBy(by CancelledBy) bool {
	return by == CancelledByAdmin || by == CancelledByCustomer
}
