package service_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"launchpad-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Project, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Project), args.Get(1).(int32), args.Error(2)
}
func (m *MockProjectRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Project, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProjectRepo) Approve(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProjectRepo) Decline(ctx context.Context, id, analystID int32, feedback string) error {
	args := m.Called(ctx, id, analystID, feedback)
	return args.Error(0)
}
func (m *MockProjectRepo) Resubmit(ctx context.Context, id int32, update *domain.ProjectUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
func (m *MockProjectRepo) GetFeedback(ctx context.Context, projectID int32) (*domain.DeclineFeedback, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeclineFeedback), args.Error(1)
}
func (m *MockProjectRepo) IncrementBookmarks(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProjectRepo) DecrementBookmarks(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectRepo) IncrementViews(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProjectRepo) IncrementInteractions(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssignmentRepo
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) Create(ctx context.Context, projectID, analystID int32) error {
	args := m.Called(ctx, projectID, analystID)
	return args.Error(0)
}
func (m *MockAssignmentRepo) Delete(ctx context.Context, projectID, analystID int32) error {
	args := m.Called(ctx, projectID, analystID)
	return args.Error(0)
}
func (m *MockAssignmentRepo) Exists(ctx context.Context, projectID, analystID int32) (bool, error) {
	args := m.Called(ctx, projectID, analystID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAssignmentRepo) ListAnalysts(ctx context.Context, projectID int32) ([]domain.User, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockAssignmentRepo) ListProjectsForAnalyst(ctx context.Context, analystID int32, status string) ([]domain.Project, error) {
	args := m.Called(ctx, analystID, status)
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockAnalyticsRepo
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) Create(ctx context.Context, rec *domain.AnalyticsRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockAnalyticsRepo) GetByProject(ctx context.Context, projectID int32) (*domain.AnalyticsRecord, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsRecord), args.Error(1)
}
func (m *MockAnalyticsRepo) Update(ctx context.Context, rec *domain.AnalyticsRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockAnalyticsRepo) Enable(ctx context.Context, projectID int32) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}
func (m *MockAnalyticsRepo) DeleteByProject(ctx context.Context, projectID int32) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockCommunityRepo
type MockCommunityRepo struct {
	mock.Mock
}

func (m *MockCommunityRepo) Create(ctx context.Context, project *domain.CommunityProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *MockCommunityRepo) GetByID(ctx context.Context, id int32) (*domain.CommunityProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityProject), args.Error(1)
}
func (m *MockCommunityRepo) List(ctx context.Context, page, pageSize int32) ([]domain.CommunityProject, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.CommunityProject), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommunityRepo) GetTeamSlot(ctx context.Context, projectID int32, teamName string) (*domain.TeamSlot, error) {
	args := m.Called(ctx, projectID, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamSlot), args.Error(1)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ExistsForUser(ctx context.Context, userID, communityProjectID int32) (bool, error) {
	args := m.Called(ctx, userID, communityProjectID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinRequestRepo) Accept(ctx context.Context, id int32, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) Reject(ctx context.Context, id int32, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) ListByProject(ctx context.Context, communityProjectID int32) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, communityProjectID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}

// MockSubscriptionRepo
type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Create(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
func (m *MockSubscriptionRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}
func (m *MockSubscriptionRepo) ListExpiredActive(ctx context.Context) ([]domain.Subscription, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}
func (m *MockSubscriptionRepo) ExpireOne(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSubscriptionRepo) ListExpiringWithin(ctx context.Context, hours int32) ([]domain.Subscription, []string, error) {
	args := m.Called(ctx, hours)
	return args.Get(0).([]domain.Subscription), args.Get(1).([]string), args.Error(2)
}
func (m *MockSubscriptionRepo) MarkReminderSent(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, userID int32, plan domain.Plan, endDate *time.Time) (*domain.Subscription, error) {
	args := m.Called(ctx, userID, plan, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}
func (m *MockSubscriptionService) ListForUser(ctx context.Context, userID int32) ([]domain.Subscription, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}
func (m *MockSubscriptionService) EffectivePlan(ctx context.Context, userID int32) (domain.Plan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Plan), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendExpiryReminder(ctx context.Context, email string, sub *domain.Subscription) error {
	args := m.Called(ctx, email, sub)
	return args.Error(0)
}
func (m *MockEmailService) SendJoinDecision(ctx context.Context, email, projectTitle, teamName string, accepted bool, reason string) error {
	args := m.Called(ctx, email, projectTitle, teamName, accepted, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendDeclineNotification(ctx context.Context, email, projectTitle, feedback string) error {
	args := m.Called(ctx, email, projectTitle, feedback)
	return args.Error(0)
}

// MockFileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) UploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockFileStore) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockFileStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockFileStore) DeleteURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
func (m *MockFileStore) Save(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockFileStore) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
