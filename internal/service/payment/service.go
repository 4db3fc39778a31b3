package payment

import (
	"context"
	"time"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

type Service struct {
	payments repository.PaymentRepository
}

func NewService(payments repository.PaymentRepository) *Service {
	return &Service{payments: payments}
}

func (s *Service) ListPayments(ctx context.Context, userID int64) ([]*model.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}

// CreatePayment records a payment for the user. Status defaults to
// completed unless the caller explicitly marks it pending, and the
// payment date is stamped with today when absent.
func (s *Service) CreatePayment(ctx context.Context, userID int64, req *model.CreatePaymentRequest) (*model.Payment, error) {
	status := model.PaymentStatusCompleted
	if req.Status == model.PaymentStatusPending {
		status = model.PaymentStatusPending
	}

	payment := &model.Payment{
		UserID:        userID,
		Amount:        req.Amount,
		Description:   req.Description,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		DueDate:       req.DueDate,
		Date:          time.Now().Format("2006-01-02"),
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
