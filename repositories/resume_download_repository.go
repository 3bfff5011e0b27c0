package repositories

import (
	"context"
	"time"

	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/models"
)

// ResumeDownloadRepository interface defines resume download persistence and
// the aggregate queries over it
type ResumeDownloadRepository interface {
	Insert(ctx context.Context, download *models.ResumeDownload) error
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// resumeDownloadRepository implements ResumeDownloadRepository interface
type resumeDownloadRepository struct {
	coll database.Collection
}

// NewResumeDownloadRepository creates a new resume download repository
func NewResumeDownloadRepository(coll database.Collection) ResumeDownloadRepository {
	return &resumeDownloadRepository{coll: coll}
}

// Insert stores a resume download event
func (r *resumeDownloadRepository) Insert(ctx context.Context, download *models.ResumeDownload) error {
	return r.coll.InsertOne(ctx, database.Document{
		"id":            download.ID,
		"downloaded_at": models.FormatTimestamp(download.DownloadedAt),
		"user_agent":    optionalValue(download.UserAgent),
		"ip_address":    optionalValue(download.IPAddress),
	})
}

// Count returns the total number of downloads
func (r *resumeDownloadRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx, nil)
}

// CountSince returns the number of downloads at or after since
func (r *resumeDownloadRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.coll.Count(ctx, &database.Condition{
		Field: "downloaded_at",
		From:  models.FormatTimestamp(since),
	})
}
