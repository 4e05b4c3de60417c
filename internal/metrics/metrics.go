package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AppointmentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_appointment_transitions_total",
			Help: "Appointment status transitions by target status.",
		},
		[]string{"status"},
	)

	BookingRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_booking_rejections_total",
			Help: "Booking requests rejected at admission by reason.",
		},
		[]string{"reason"},
	)

	OverrideCancellations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_override_cancellations_total",
			Help: "Appointments force-cancelled by working hour overrides.",
		},
	)

	RemindersDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_reminders_total",
			Help: "Reminder dispatch outcomes by tier.",
		},
		[]string{"tier", "outcome"},
	)

	SmsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_sms_total",
			Help: "SMS send attempts by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	ExpensesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_recurring_expenses_created_total",
			Help: "Expenses materialized from recurring definitions.",
		},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barber_job_duration_seconds",
			Help:    "Batch job run duration.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	JobErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_job_item_errors_total",
			Help: "Per-item failures inside batch jobs.",
		},
		[]string{"job"},
	)
)
