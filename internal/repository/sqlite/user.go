package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

const userColumns = `id, name, email, password, phone, dateOfBirth, bloodGroup,
	emergencyContactName, emergencyContactPhone, emergencyContactRelationship, createdAt`

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	var user model.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			name, email, password, phone, dateOfBirth, bloodGroup,
			emergencyContactName, emergencyContactPhone, emergencyContactRelationship
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Phone,
		user.DateOfBirth,
		user.BloodGroup,
		user.EmergencyContactName,
		user.EmergencyContactPhone,
		user.EmergencyContactRelationship,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new user id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET name = ?, phone = ?, dateOfBirth = ?, bloodGroup = ?,
			emergencyContactName = ?, emergencyContactPhone = ?, emergencyContactRelationship = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Phone,
		user.DateOfBirth,
		user.BloodGroup,
		user.EmergencyContactName,
		user.EmergencyContactPhone,
		user.EmergencyContactRelationship,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
