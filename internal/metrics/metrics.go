package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the appointment scheduler.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	AppointmentsBooked      prometheus.Counter
	AppointmentsRescheduled prometheus.Counter
	AppointmentsCancelled   prometheus.Counter
	SlotConflicts           *prometheus.CounterVec
	AuthorizationDenials    *prometheus.CounterVec
	OperationDuration       *prometheus.HistogramVec
}

// New creates the scheduler metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Name: "petclinic_appointments_booked_total",
			Help: "Total number of appointments booked",
		}),
		AppointmentsRescheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "petclinic_appointments_rescheduled_total",
			Help: "Total number of appointments updated",
		}),
		AppointmentsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "petclinic_appointments_cancelled_total",
			Help: "Total number of appointments deleted by their owner",
		}),
		SlotConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "petclinic_slot_conflicts_total",
			Help: "Bookings rejected because the doctor slot was taken",
		}, []string{"operation"}),
		AuthorizationDenials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "petclinic_authorization_denials_total",
			Help: "Operations rejected by the authorization gate",
		}, []string{"reason"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petclinic_scheduler_operation_duration_seconds",
			Help:    "Duration of scheduler operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementBooked records a successful booking.
func (m *Metrics) IncrementBooked() {
	if m == nil {
		return
	}
	m.AppointmentsBooked.Inc()
}

// IncrementRescheduled records a successful update.
func (m *Metrics) IncrementRescheduled() {
	if m == nil {
		return
	}
	m.AppointmentsRescheduled.Inc()
}

// IncrementCancelled records a successful deletion.
func (m *Metrics) IncrementCancelled() {
	if m == nil {
		return
	}
	m.AppointmentsCancelled.Inc()
}

// IncrementSlotConflict records a rejected double booking.
func (m *Metrics) IncrementSlotConflict(operation string) {
	if m == nil {
		return
	}
	m.SlotConflicts.WithLabelValues(operation).Inc()
}

// IncrementDenied records a gate rejection.
func (m *Metrics) IncrementDenied(reason string) {
	if m == nil {
		return
	}
	m.AuthorizationDenials.WithLabelValues(reason).Inc()
}

// ObserveOperation records the duration of a scheduler operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
