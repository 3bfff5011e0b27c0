package controllers

import (
	"net/http"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/services"
)

// StatusController handles status check requests
type StatusController struct {
	services *services.Services
}

// NewStatusController creates a new status controller
func NewStatusController(services *services.Services) *StatusController {
	return &StatusController{
		services: services,
	}
}

// Create handles POST /api/status
func (c *StatusController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.StatusCheckCreate
	if err := decodeJSON(w, r, &in); err != nil {
		writeDecodeError(w, err)
		return
	}

	check, err := c.services.Status.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err, "Failed to save status check")
		return
	}

	writeJSON(w, http.StatusOK, check)
}

// Index handles GET /api/status
func (c *StatusController) Index(w http.ResponseWriter, r *http.Request) {
	checks, err := c.services.Status.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to load status checks")
		return
	}

	// Return [] not null for empty lists
	if checks == nil {
		checks = []models.StatusCheck{}
	}

	writeJSON(w, http.StatusOK, checks)
}
