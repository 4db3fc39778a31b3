package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nes268/healmate/internal/model"
)

const appointmentColumns = `id, userId, doctorName, specialty, date, time, duration, status, notes, createdAt`

func (r *appointmentRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE userId = ? ORDER BY date DESC`

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (userId, doctorName, specialty, date, time, duration, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		appointment.UserID,
		appointment.DoctorName,
		appointment.Specialty,
		appointment.Date,
		appointment.Time,
		appointment.Duration,
		appointment.Status,
		appointment.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new appointment id: %w", err)
	}
	appointment.ID = id
	return nil
}

// Update only touches the reschedulable columns; doctor, specialty and
// owner are fixed at creation.
func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `UPDATE appointments SET date = ?, time = ?, notes = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		appointment.Date,
		appointment.Time,
		appointment.Notes,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

// Delete is an unconditional hard delete; removing an id that does not
// exist succeeds without touching any row.
func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM appointments WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
