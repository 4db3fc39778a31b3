package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

var ErrNotFound = errors.New("doctor not found")

type Service struct {
	doctors repository.DoctorRepository
}

func NewService(doctors repository.DoctorRepository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) ListDoctors(ctx context.Context, filter model.DoctorFilter) ([]*model.Doctor, error) {
	doctors, err := s.doctors.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, ErrNotFound
	}
	return doctor, nil
}
