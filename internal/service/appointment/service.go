package appointment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nes268/healmate/internal/email"
	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

type Service struct {
	appointments repository.AppointmentRepository
	emailSvc     email.Service
}

func NewService(appointments repository.AppointmentRepository, emailSvc email.Service) *Service {
	return &Service{appointments: appointments, emailSvc: emailSvc}
}

func (s *Service) ListAppointments(ctx context.Context, userID int64) ([]*model.Appointment, error) {
	return s.appointments.ListByUser(ctx, userID)
}

// CreateAppointment books a slot for the user. Two concurrent bookings
// for the same slot both succeed; there is no conflict check.
func (s *Service) CreateAppointment(ctx context.Context, userID int64, userEmail string, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		UserID:     userID,
		DoctorName: req.DoctorName,
		Specialty:  req.Specialty,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
		Status:     model.AppointmentDefaultStatus,
		Notes:      req.Notes,
	}
	if appointment.Duration == 0 {
		appointment.Duration = model.AppointmentDefaultDuration
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendAppointmentConfirmation(userEmail, appointment); err != nil {
		// confirmation mail is best-effort; the booking stands
		log.Warn().Err(err).Int64("appointment_id", appointment.ID).Msg("failed to send confirmation email")
	}

	return appointment, nil
}

// UpdateAppointment reschedules by merging date, time and notes over
// the stored row. A missing appointment id is an error here because the
// merge needs a base row.
func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %d not found", id)
	}

	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment is idempotent: deleting an id that never existed,
// or one already deleted, is a success.
func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}
