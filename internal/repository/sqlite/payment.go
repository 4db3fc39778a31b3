package sqlite

import (
	"context"
	"fmt"

	"github.com/nes268/healmate/internal/model"
)

const paymentColumns = `id, userId, amount, description, status, paymentMethod, dueDate, date, createdAt`

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE userId = ? ORDER BY createdAt DESC`

	payments := []*model.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (userId, amount, description, status, paymentMethod, dueDate, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		payment.UserID,
		payment.Amount,
		payment.Description,
		payment.Status,
		payment.PaymentMethod,
		payment.DueDate,
		payment.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new payment id: %w", err)
	}
	payment.ID = id
	return nil
}
