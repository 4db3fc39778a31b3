package sqlite

import (
	"context"
	"fmt"

	"github.com/nes268/healmate/internal/model"
)

func (r *waitTimeRepository) List(ctx context.Context) ([]*model.WaitTime, error) {
	query := `SELECT id, department, currentWait, status, updatedAt FROM wait_times ORDER BY updatedAt DESC`

	waitTimes := []*model.WaitTime{}
	if err := r.db.SelectContext(ctx, &waitTimes, query); err != nil {
		return nil, fmt.Errorf("failed to list wait times: %w", err)
	}
	return waitTimes, nil
}
