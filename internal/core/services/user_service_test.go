package services_test

import (
	"context"
	"testing"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, userID string, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestEnsureHouseholdUser_CreatesOnFirstUse() {
	ctx := context.Background()
	member := domain.HouseholdMembers[0]

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == member.Name && u.Email == member.Email && u.UserID != ""
	})).Return(nil).Once()

	user, err := suite.service.EnsureHouseholdUser(ctx, member.ID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(member.Name, user.Name)
	suite.Equal(member.Email, user.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureHouseholdUser_ReturnsExistingWithoutWrites() {
	ctx := context.Background()
	member := domain.HouseholdMembers[0]
	existing := &domain.User{UserID: "u1", Name: member.Name, Email: member.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(existing, nil).Once()

	user, err := suite.service.EnsureHouseholdUser(ctx, member.ID)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserName", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureHouseholdUser_PatchesStaleName() {
	ctx := context.Background()
	member := domain.HouseholdMembers[1]
	existing := &domain.User{UserID: "u2", Name: "Old Name", Email: member.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUserName", ctx, "u2", member.Name).Return(nil).Once()

	user, err := suite.service.EnsureHouseholdUser(ctx, member.ID)

	suite.Require().NoError(err)
	suite.Equal(member.Name, user.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureHouseholdUser_RejectsUnknownMember() {
	ctx := context.Background()

	user, err := suite.service.EnsureHouseholdUser(ctx, "stranger")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnknownMember)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureHouseholdUser_LookupError() {
	ctx := context.Background()
	member := domain.HouseholdMembers[0]

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(nil, assert.AnError).Once()

	user, err := suite.service.EnsureHouseholdUser(ctx, member.ID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetHouseholdUser_NeverWrites() {
	ctx := context.Background()
	member := domain.HouseholdMembers[0]
	existing := &domain.User{UserID: "u1", Name: "Stale", Email: member.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(existing, nil).Once()

	user, err := suite.service.GetHouseholdUser(ctx, member.ID)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserName", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
