package service

import (
	"context"
	"time"

	"launchpad-backend/internal/domain"
)

type UserService interface {
	Register(ctx context.Context, email, name, phone, password string, role domain.UserRole) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) error
}

type ReviewService interface {
	Submit(ctx context.Context, ownerID int32, project *domain.Project) (*domain.Project, error)
	Approve(ctx context.Context, projectID int32) error
	Decline(ctx context.Context, projectID, analystID int32, feedback string) error
	Resubmit(ctx context.Context, ownerID, projectID int32, update *domain.ProjectUpdate) error
	GetFeedback(ctx context.Context, projectID int32) (*domain.DeclineFeedback, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, projectID, analystID int32) error
	Unassign(ctx context.Context, projectID, analystID int32) error
	ListAnalystsForProject(ctx context.Context, projectID int32) ([]domain.User, error)
	ListAssignedProjects(ctx context.Context, analystID int32, status domain.ProjectStatus) ([]domain.Project, error)
}

type AnalyticsService interface {
	Create(ctx context.Context, projectID int32, metrics domain.AnalyticsMetrics, documentURL string) (*domain.AnalyticsRecord, error)
	Update(ctx context.Context, projectID int32, metrics domain.AnalyticsMetrics, documentURL *string) (*domain.AnalyticsRecord, error)
	Enable(ctx context.Context, projectID int32) error
	View(ctx context.Context, projectID, requesterID int32) (*domain.AnalyticsRecord, error)
	Discard(ctx context.Context, projectID int32) error
}

type JoinService interface {
	RequestJoin(ctx context.Context, userID, communityProjectID int32, teamName, description string) (*domain.JoinRequest, error)
	Decide(ctx context.Context, joinRequestID int32, action domain.JoinRequestStatus, reason string) error
	ListForProject(ctx context.Context, communityProjectID int32) ([]domain.JoinRequest, error)
	ListForUser(ctx context.Context, userID int32) ([]domain.JoinRequest, error)
}

type CommunityService interface {
	Create(ctx context.Context, ownerID int32, project *domain.CommunityProject) error
	Get(ctx context.Context, id int32) (*domain.CommunityProject, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.CommunityProject, int32, error)
}

type ProjectService interface {
	Get(ctx context.Context, id int32) (*domain.Project, error)
	View(ctx context.Context, id int32) (*domain.Project, error) // Get plus a view-count bump
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Project, int32, error)
	ListMine(ctx context.Context, ownerID int32) ([]domain.Project, error)
	Bookmark(ctx context.Context, projectID int32) error
	Unbookmark(ctx context.Context, projectID int32) error
	Order(ctx context.Context, userID, projectID int32) error
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID int32, plan domain.Plan, endDate *time.Time) (*domain.Subscription, error)
	ListForUser(ctx context.Context, userID int32) ([]domain.Subscription, error)
	EffectivePlan(ctx context.Context, userID int32) (domain.Plan, error)
}

type EmailService interface {
	SendExpiryReminder(ctx context.Context, email string, sub *domain.Subscription) error
	SendJoinDecision(ctx context.Context, email, projectTitle, teamName string, accepted bool, reason string) error
	SendDeclineNotification(ctx context.Context, email, projectTitle, feedback string) error
}
