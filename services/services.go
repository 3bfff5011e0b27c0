package services

import (
	"time"

	"github.com/harishcmuthyala/app/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// Services holds all service instances
type Services struct {
	Status  StatusService
	Contact ContactService
	Resume  ResumeService
}

// NewServices creates and initializes all service instances. recentWindow is
// the span counted as "recent" in resume statistics.
func NewServices(repos *repositories.Repositories, recentWindow time.Duration) *Services {
	return &Services{
		Status:  NewStatusService(repos.StatusCheck),
		Contact: NewContactService(repos.ContactMessage),
		Resume:  NewResumeService(repos.ResumeDownload, recentWindow),
	}
}
