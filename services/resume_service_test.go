package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harishcmuthyala/app/database"
	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/repositories"
	"github.com/harishcmuthyala/app/repositories/mocks"
)

func freezeTime(t *testing.T, now time.Time) {
	t.Helper()
	restore := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = restore })
}

func TestResumeService_TrackDownload(t *testing.T) {
	repo := mocks.NewMockResumeDownloadRepository(t)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(d *models.ResumeDownload) bool {
		return d.UserAgent != nil && *d.UserAgent == "Mozilla/5.0" && d.IPAddress != nil && *d.IPAddress == "203.0.113.9"
	})).Return(nil).Once()
	repo.On("Count", mock.Anything).Return(int64(42), nil).Once()

	result, err := NewResumeService(repo, 0).TrackDownload(context.Background(), &models.ResumeDownloadCreate{
		UserAgent: "Mozilla/5.0",
		IPAddress: "203.0.113.9",
	})

	require.NoError(t, err)
	assert.Equal(t, &models.DownloadTracked{Message: "Download tracked", TotalDownloads: 42}, result)
}

func TestResumeService_TrackDownloadInsertFailure(t *testing.T) {
	repo := mocks.NewMockResumeDownloadRepository(t)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("down")).Once()

	_, err := NewResumeService(repo, 0).TrackDownload(context.Background(), &models.ResumeDownloadCreate{})

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	repo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestResumeService_StatsUsesRollingWindow(t *testing.T) {
	now := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	repo := mocks.NewMockResumeDownloadRepository(t)
	repo.On("Count", mock.Anything).Return(int64(10), nil).Once()
	repo.On("CountSince", mock.Anything, now.Add(-7*24*time.Hour)).Return(int64(3), nil).Once()

	stats, err := NewResumeService(repo, 7*24*time.Hour).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.ResumeStats{TotalDownloads: 10, RecentDownloads: 3}, stats)
}

func TestResumeService_StatsFailure(t *testing.T) {
	repo := mocks.NewMockResumeDownloadRepository(t)
	repo.On("Count", mock.Anything).Return(int64(0), errors.New("down")).Once()

	_, err := NewResumeService(repo, DefaultRecentWindow).Stats(context.Background())

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
}

// Concurrent tracking calls each produce a document and the total reflects
// all of them
func TestResumeService_ConcurrentTracking(t *testing.T) {
	ctx := context.Background()
	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(ctx) })

	service := NewServices(repositories.NewRepositories(store), DefaultRecentWindow).Resume

	const n = 25
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		totals = make(map[int64]bool)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.TrackDownload(ctx, &models.ResumeDownloadCreate{})
			if assert.NoError(t, err) {
				mu.Lock()
				totals[result.TotalDownloads] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.TotalDownloads)
	assert.Equal(t, int64(n), stats.RecentDownloads)
	assert.True(t, totals[int64(n)], "the last tracking call sees every download")
}

// Sequential tracking increases the total by exactly one per call
func TestResumeService_TotalIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(ctx) })

	service := NewServices(repositories.NewRepositories(store), DefaultRecentWindow).Resume

	for i := int64(1); i <= 5; i++ {
		result, err := service.TrackDownload(ctx, &models.ResumeDownloadCreate{UserAgent: "curl"})
		require.NoError(t, err)
		assert.Equal(t, i, result.TotalDownloads)
	}
}
