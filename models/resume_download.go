package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeDownload records a single resume download
type ResumeDownload struct {
	ID           string    `json:"id"`
	DownloadedAt time.Time `json:"downloaded_at"`
	UserAgent    *string   `json:"user_agent"`
	IPAddress    *string   `json:"ip_address"`
}

// ResumeDownloadCreate carries the details of a download. Both fields are
// free form and stored as given.
type ResumeDownloadCreate struct {
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
}

// NewResumeDownload builds the stored record. Empty details are kept as nil
// so they serialize as null.
func NewResumeDownload(in *ResumeDownloadCreate, now time.Time) *ResumeDownload {
	return &ResumeDownload{
		ID:           uuid.NewString(),
		DownloadedAt: createdAt(now),
		UserAgent:    optional(in.UserAgent),
		IPAddress:    optional(in.IPAddress),
	}
}

// DownloadTracked is the response to a tracked download
type DownloadTracked struct {
	Message        string `json:"message"`
	TotalDownloads int64  `json:"total_downloads"`
}

// ResumeStats summarizes resume downloads
type ResumeStats struct {
	TotalDownloads  int64 `json:"total_downloads"`
	RecentDownloads int64 `json:"recent_downloads"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
