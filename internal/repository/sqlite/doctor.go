package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nes268/healmate/internal/model"
)

const doctorColumns = `id, name, specialty, experience, rating, availableSlots, image, createdAt`

// buildDoctorQuery composes the listing query from bound-parameter
// clauses: specialty alone, search alone (name or specialty), or both
// AND'd. No filters returns every row in insertion order.
func buildDoctorQuery(filter model.DoctorFilter) (string, []interface{}) {
	query := `SELECT ` + doctorColumns + ` FROM doctors`

	var clauses []string
	var args []interface{}

	if filter.Specialty != "" {
		clauses = append(clauses, "specialty LIKE ?")
		args = append(args, "%"+filter.Specialty+"%")
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR specialty LIKE ?)")
		args = append(args, "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	return query, args
}

func (r *doctorRepository) List(ctx context.Context, filter model.DoctorFilter) ([]*model.Doctor, error) {
	query, args := buildDoctorQuery(filter)

	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = ?`

	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}
