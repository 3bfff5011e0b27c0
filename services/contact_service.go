package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/repositories"
)

// ContactService interface defines contact form business logic
type ContactService interface {
	// Submit validates and stores a contact form submission
	Submit(ctx context.Context, in *models.ContactMessageCreate) (*models.ContactMessage, error)
	// List returns all stored messages (up to models.ListLimit), read or not
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo repositories.ContactMessageRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repositories.ContactMessageRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

func (s *contactService) Submit(ctx context.Context, in *models.ContactMessageCreate) (*models.ContactMessage, error) {
	if errors := in.Validate(); errors.HasErrors() {
		return nil, &ValidationError{Errors: errors}
	}

	msg := models.NewContactMessage(in, timeNow())
	if err := s.contactRepo.Insert(ctx, msg); err != nil {
		return nil, &PersistenceError{Op: "save contact message", Err: err}
	}

	zap.S().Infow("New contact message",
		"id", msg.ID,
		"email", msg.Email,
		"subject", msg.Subject,
	)

	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx, models.ListLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "list contact messages", Err: err}
	}
	return messages, nil
}
