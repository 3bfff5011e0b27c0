package controllers

import (
	"net/http"
)

// RootController answers the API liveness probe
type RootController struct{}

// NewRootController creates a new root controller
func NewRootController() *RootController {
	return &RootController{}
}

// Index handles GET /api/
func (c *RootController) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}
