package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/repositories/mocks"
)

// ContactServiceTestSuite is a test suite for the contact service
type ContactServiceTestSuite struct {
	suite.Suite
	service         ContactService
	mockContactRepo *mocks.MockContactMessageRepository
	now             time.Time
	restoreNow      func() time.Time
}

// SetupTest sets up the test suite before each test
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockContactRepo = mocks.NewMockContactMessageRepository(suite.T())
	suite.service = NewContactService(suite.mockContactRepo)

	suite.now = time.Date(2025, 10, 6, 14, 0, 0, 0, time.UTC)
	suite.restoreNow = timeNow
	timeNow = func() time.Time { return suite.now }
}

func (suite *ContactServiceTestSuite) TearDownTest() {
	timeNow = suite.restoreNow
}

func validContactInput() *models.ContactMessageCreate {
	return &models.ContactMessageCreate{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi",
		Message: "Hello",
	}
}

// TestSubmit_Success tests that a valid submission is stored and echoed back
func (suite *ContactServiceTestSuite) TestSubmit_Success() {
	var stored *models.ContactMessage
	suite.mockContactRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.ContactMessage")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.ContactMessage) }).
		Return(nil).Once()

	in := validContactInput()
	msg, err := suite.service.Submit(context.Background(), in)

	require.NoError(suite.T(), err)
	assert.Same(suite.T(), stored, msg)
	assert.Equal(suite.T(), in.Name, msg.Name)
	assert.Equal(suite.T(), in.Email, msg.Email)
	assert.Equal(suite.T(), in.Subject, msg.Subject)
	assert.Equal(suite.T(), in.Message, msg.Message)
	assert.False(suite.T(), msg.IsRead)
	assert.NotEmpty(suite.T(), msg.ID)
	assert.Equal(suite.T(), suite.now, msg.CreatedAt)
}

// TestSubmit_ValidationFailure tests that each broken constraint is rejected
// before the repository is touched
func (suite *ContactServiceTestSuite) TestSubmit_ValidationFailure() {
	cases := map[string]func(in *models.ContactMessageCreate){
		"empty name":      func(in *models.ContactMessageCreate) { in.Name = "" },
		"long subject":    func(in *models.ContactMessageCreate) { in.Subject = strings.Repeat("s", 201) },
		"malformed email": func(in *models.ContactMessageCreate) { in.Email = "jo-at-x.com" },
		"missing message": func(in *models.ContactMessageCreate) { in.Message = "" },
	}

	for name, mutate := range cases {
		in := validContactInput()
		mutate(in)

		msg, err := suite.service.Submit(context.Background(), in)

		var validationErr *ValidationError
		assert.Nil(suite.T(), msg, name)
		assert.True(suite.T(), errors.As(err, &validationErr), name)
	}

	suite.mockContactRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

// TestSubmit_PersistenceFailure tests that store errors are wrapped
func (suite *ContactServiceTestSuite) TestSubmit_PersistenceFailure() {
	storeErr := errors.New("connection refused")
	suite.mockContactRepo.On("Insert", mock.Anything, mock.Anything).Return(storeErr).Once()

	msg, err := suite.service.Submit(context.Background(), validContactInput())

	var persistenceErr *PersistenceError
	assert.Nil(suite.T(), msg)
	require.True(suite.T(), errors.As(err, &persistenceErr))
	assert.ErrorIs(suite.T(), err, storeErr)
}

// TestList_UsesCap tests that listing asks for at most ListLimit records
func (suite *ContactServiceTestSuite) TestList_UsesCap() {
	expected := []models.ContactMessage{{ID: "1"}, {ID: "2"}}
	suite.mockContactRepo.On("List", mock.Anything, models.ListLimit).Return(expected, nil).Once()

	messages, err := suite.service.List(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, messages)
}

func (suite *ContactServiceTestSuite) TestList_Failure() {
	suite.mockContactRepo.On("List", mock.Anything, models.ListLimit).Return(nil, errors.New("boom")).Once()

	_, err := suite.service.List(context.Background())

	var persistenceErr *PersistenceError
	assert.True(suite.T(), errors.As(err, &persistenceErr))
}

// TestContactServiceSuite runs the contact service test suite
func TestContactServiceSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
