package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

const maxRecentActivity = 5

// Service derives dashboard reads from the appointment and payment
// primitives at request time. Nothing is cached or maintained
// incrementally.
type Service struct {
	appointments repository.AppointmentRepository
	payments     repository.PaymentRepository
}

func NewService(appointments repository.AppointmentRepository, payments repository.PaymentRepository) *Service {
	return &Service{appointments: appointments, payments: payments}
}

// GetStats aggregates per-user counters. Dates are compared at day
// granularity: an appointment today is a visit, not upcoming.
func (s *Service) GetStats(ctx context.Context, userID int64) (*model.DashboardStats, error) {
	appointments, err := s.appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	// ISO dates compare correctly as strings
	today := time.Now().Format("2006-01-02")

	stats := &model.DashboardStats{}
	for _, a := range appointments {
		if a.Date > today {
			stats.UpcomingAppointments++
		} else {
			stats.TotalVisits++
		}
	}
	for _, p := range payments {
		if p.Status == model.PaymentStatusPending {
			stats.PendingPayments += p.Amount
		}
	}
	return stats, nil
}

// GetRecentActivity maps the user's five most recent appointments into
// the activity feed. Appointments arrive date-descending from the
// store.
func (s *Service) GetRecentActivity(ctx context.Context, userID int64) ([]*model.Activity, error) {
	appointments, err := s.appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	if len(appointments) > maxRecentActivity {
		appointments = appointments[:maxRecentActivity]
	}

	activities := make([]*model.Activity, 0, len(appointments))
	for _, a := range appointments {
		activities = append(activities, &model.Activity{
			Type:        "appointment",
			Title:       fmt.Sprintf("Appointment with %s", a.DoctorName),
			Description: a.Specialty,
			Date:        a.Date,
			Time:        a.Time,
		})
	}
	return activities, nil
}
