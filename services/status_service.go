package services

import (
	"context"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/repositories"
)

// StatusService interface defines status check business logic
type StatusService interface {
	Create(ctx context.Context, in *models.StatusCheckCreate) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}

// statusService implements StatusService interface
type statusService struct {
	statusRepo repositories.StatusCheckRepository
}

// NewStatusService creates a new status service
func NewStatusService(statusRepo repositories.StatusCheckRepository) StatusService {
	return &statusService{
		statusRepo: statusRepo,
	}
}

// Create validates and records a status check
func (s *statusService) Create(ctx context.Context, in *models.StatusCheckCreate) (*models.StatusCheck, error) {
	if errors := in.Validate(); errors.HasErrors() {
		return nil, &ValidationError{Errors: errors}
	}

	check := models.NewStatusCheck(in, timeNow())
	if err := s.statusRepo.Insert(ctx, check); err != nil {
		return nil, &PersistenceError{Op: "save status check", Err: err}
	}

	return check, nil
}

// List retrieves recorded status checks, capped at models.ListLimit
func (s *statusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.statusRepo.List(ctx, models.ListLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "list status checks", Err: err}
	}
	return checks, nil
}
