package waittime

import (
	"context"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

type Service struct {
	waitTimes repository.WaitTimeRepository
}

func NewService(waitTimes repository.WaitTimeRepository) *Service {
	return &Service{waitTimes: waitTimes}
}

// ListWaitTimes returns departments most recently updated first.
func (s *Service) ListWaitTimes(ctx context.Context) ([]*model.WaitTime, error) {
	return s.waitTimes.List(ctx)
}
