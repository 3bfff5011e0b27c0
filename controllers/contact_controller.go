package controllers

import (
	"net/http"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/services"
)

// ContactController handles contact form submission and listing
type ContactController struct {
	services *services.Services
}

// NewContactController creates a new contact controller
func NewContactController(services *services.Services) *ContactController {
	return &ContactController{
		services: services,
	}
}

// Submit handles POST /api/contact
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessageCreate
	if err := decodeJSON(w, r, &in); err != nil {
		writeDecodeError(w, err)
		return
	}

	msg, err := c.services.Contact.Submit(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err, "Failed to save message")
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// Index handles GET /api/contact. It is unauthenticated and meant for the
// site owner.
func (c *ContactController) Index(w http.ResponseWriter, r *http.Request) {
	messages, err := c.services.Contact.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to load messages")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, messages)
}
