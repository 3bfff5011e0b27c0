// Package mocks provides testify mocks for the repository interfaces
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/harishcmuthyala/app/models"
)

// MockStatusCheckRepository is a mock of repositories.StatusCheckRepository
type MockStatusCheckRepository struct {
	mock.Mock
}

// NewMockStatusCheckRepository creates a mock that asserts its expectations
// when the test finishes
func NewMockStatusCheckRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatusCheckRepository {
	m := &MockStatusCheckRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockStatusCheckRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	args := m.Called(ctx, limit)
	checks, _ := args.Get(0).([]models.StatusCheck)
	return checks, args.Error(1)
}

// MockContactMessageRepository is a mock of repositories.ContactMessageRepository
type MockContactMessageRepository struct {
	mock.Mock
}

// NewMockContactMessageRepository creates a mock that asserts its
// expectations when the test finishes
func NewMockContactMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContactMessageRepository {
	m := &MockContactMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockContactMessageRepository) Insert(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactMessageRepository) List(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]models.ContactMessage)
	return messages, args.Error(1)
}

// MockResumeDownloadRepository is a mock of repositories.ResumeDownloadRepository
type MockResumeDownloadRepository struct {
	mock.Mock
}

// NewMockResumeDownloadRepository creates a mock that asserts its
// expectations when the test finishes
func NewMockResumeDownloadRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResumeDownloadRepository {
	m := &MockResumeDownloadRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockResumeDownloadRepository) Insert(ctx context.Context, download *models.ResumeDownload) error {
	args := m.Called(ctx, download)
	return args.Error(0)
}

func (m *MockResumeDownloadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeDownloadRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
