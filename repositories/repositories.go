package repositories

import (
	"github.com/harishcmuthyala/app/database"
)

// Collection names, one per resource type
const (
	StatusChecksCollection    = "status_checks"
	ContactMessagesCollection = "contact_messages"
	ResumeDownloadsCollection = "resume_downloads"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	StatusCheck    StatusCheckRepository
	ContactMessage ContactMessageRepository
	ResumeDownload ResumeDownloadRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(store database.Store) *Repositories {
	return &Repositories{
		StatusCheck:    NewStatusCheckRepository(store.Collection(StatusChecksCollection)),
		ContactMessage: NewContactMessageRepository(store.Collection(ContactMessagesCollection)),
		ResumeDownload: NewResumeDownloadRepository(store.Collection(ResumeDownloadsCollection)),
	}
}
