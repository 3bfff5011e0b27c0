package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a recorded client status ping
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the request body for recording a status check
type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}

// Validate validates the status check input
func (f *StatusCheckCreate) Validate() ValidationErrors {
	return validateStruct(f)
}

// NewStatusCheck builds the stored record for a validated input
func NewStatusCheck(in *StatusCheckCreate, now time.Time) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Timestamp:  createdAt(now),
	}
}
