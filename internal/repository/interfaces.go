package repository

import (
	"context"
	"errors"

	"github.com/nes268/healmate/internal/model"
)

// ErrDuplicateEmail is returned by UserRepository.Create when the email
// column's unique constraint fires.
var ErrDuplicateEmail = errors.New("email already registered")

// Lookups return (nil, nil) when no row matches; an error always means
// the store itself failed.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
}

type DoctorRepository interface {
	List(ctx context.Context, filter model.DoctorFilter) ([]*model.Doctor, error)
	GetByID(ctx context.Context, id int64) (*model.Doctor, error)
}

type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*model.Appointment, error)
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	Create(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id int64) error
}

type WaitTimeRepository interface {
	List(ctx context.Context) ([]*model.WaitTime, error)
}

type PaymentRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*model.Payment, error)
	Create(ctx context.Context, payment *model.Payment) error
}
