package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/repositories"
)

// DefaultRecentWindow is the trailing span reported as recent downloads
const DefaultRecentWindow = 30 * 24 * time.Hour

// ResumeService interface defines resume download tracking
type ResumeService interface {
	TrackDownload(ctx context.Context, in *models.ResumeDownloadCreate) (*models.DownloadTracked, error)
	Stats(ctx context.Context) (*models.ResumeStats, error)
}

// resumeService implements ResumeService interface
type resumeService struct {
	downloadRepo repositories.ResumeDownloadRepository
	recentWindow time.Duration
}

// NewResumeService creates a new resume service. A non-positive window falls
// back to DefaultRecentWindow.
func NewResumeService(downloadRepo repositories.ResumeDownloadRepository, recentWindow time.Duration) ResumeService {
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}
	return &resumeService{
		downloadRepo: downloadRepo,
		recentWindow: recentWindow,
	}
}

// TrackDownload records one download and returns the running total
func (s *resumeService) TrackDownload(ctx context.Context, in *models.ResumeDownloadCreate) (*models.DownloadTracked, error) {
	download := models.NewResumeDownload(in, timeNow())
	if err := s.downloadRepo.Insert(ctx, download); err != nil {
		return nil, &PersistenceError{Op: "track download", Err: err}
	}

	total, err := s.downloadRepo.Count(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "count downloads", Err: err}
	}

	zap.S().Infof("Resume downloaded. Total downloads: %d", total)

	return &models.DownloadTracked{
		Message:        "Download tracked",
		TotalDownloads: total,
	}, nil
}

// Stats returns the total download count and the count within the trailing
// recent window
func (s *resumeService) Stats(ctx context.Context) (*models.ResumeStats, error) {
	total, err := s.downloadRepo.Count(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "get stats", Err: err}
	}

	since := timeNow().UTC().Add(-s.recentWindow)
	recent, err := s.downloadRepo.CountSince(ctx, since)
	if err != nil {
		return nil, &PersistenceError{Op: "get stats", Err: err}
	}

	return &models.ResumeStats{
		TotalDownloads:  total,
		RecentDownloads: recent,
	}, nil
}
