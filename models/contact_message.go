package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a message submitted via the contact form.
// IsRead is reserved for administrative use; nothing flips it yet.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// ContactMessageCreate is the contact form payload. Lengths are counted in
// characters, not bytes.
type ContactMessageCreate struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// Validate validates the contact form data
func (f *ContactMessageCreate) Validate() ValidationErrors {
	return validateStruct(f)
}

// NewContactMessage builds the stored record for a validated submission
func NewContactMessage(in *ContactMessageCreate, now time.Time) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt(now),
		IsRead:    false,
	}
}
