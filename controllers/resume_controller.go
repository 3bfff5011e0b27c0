package controllers

import (
	"net/http"

	"github.com/harishcmuthyala/app/middleware"
	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/services"
)

// ResumeController handles resume download tracking
type ResumeController struct {
	services *services.Services
}

// NewResumeController creates a new resume controller
func NewResumeController(services *services.Services) *ResumeController {
	return &ResumeController{
		services: services,
	}
}

// TrackDownload handles POST /api/resume/download. The user agent is only
// what the caller passes in the user_agent query parameter.
func (c *ResumeController) TrackDownload(w http.ResponseWriter, r *http.Request) {
	in := &models.ResumeDownloadCreate{
		UserAgent: r.URL.Query().Get("user_agent"),
		IPAddress: middleware.ClientIP(r),
	}

	result, err := c.services.Resume.TrackDownload(r.Context(), in)
	if err != nil {
		writeServiceError(w, err, "Failed to track download")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Stats handles GET /api/resume/stats
func (c *ResumeController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Resume.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to get stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
