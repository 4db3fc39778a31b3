package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

var ErrNotFound = errors.New("user not found")

type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user.Profile(), nil
}

// UpdateProfile merges the supplied fields over the stored row. Empty
// strings are treated as "leave unchanged"; email and password cannot
// be changed here.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.BloodGroup != "" {
		user.BloodGroup = req.BloodGroup
	}
	if req.EmergencyContact != nil {
		user.EmergencyContactName = req.EmergencyContact.Name
		user.EmergencyContactPhone = req.EmergencyContact.Phone
		user.EmergencyContactRelationship = req.EmergencyContact.Relationship
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user.Profile(), nil
}
