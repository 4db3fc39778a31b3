package emergency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nes268/healmate/internal/email"
	"github.com/nes268/healmate/internal/model"
)

const (
	ServiceAmbulance     = "ambulance"
	ServiceDiagnosticVan = "diagnostic-van"
)

// Service handles ambulance and diagnostic-van bookings. Bookings are
// dispatched with a generated reference and echoed back; they are not
// persisted.
type Service struct {
	emailSvc email.Service
}

func NewService(emailSvc email.Service) *Service {
	return &Service{emailSvc: emailSvc}
}

func (s *Service) BookAmbulance(ctx context.Context, userEmail string, req *model.AmbulanceRequest) *model.EmergencyBooking {
	return s.book(userEmail, ServiceAmbulance, req)
}

func (s *Service) BookDiagnosticVan(ctx context.Context, userEmail string, req *model.DiagnosticVanRequest) *model.EmergencyBooking {
	return s.book(userEmail, ServiceDiagnosticVan, req)
}

func (s *Service) book(userEmail, service string, details interface{}) *model.EmergencyBooking {
	booking := &model.EmergencyBooking{
		Reference:   uuid.New().String(),
		Service:     service,
		Status:      "requested",
		RequestedAt: time.Now().Format(time.RFC3339),
		Details:     details,
	}

	if err := s.emailSvc.SendEmergencyDispatch(userEmail, booking); err != nil {
		log.Warn().Err(err).Str("reference", booking.Reference).Msg("failed to send dispatch email")
	}

	log.Info().
		Str("service", service).
		Str("reference", booking.Reference).
		Msg("emergency booking requested")

	return booking
}
