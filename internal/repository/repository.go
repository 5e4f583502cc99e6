package repository

import (
	"context"

	"launchpad-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Project, int32, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Project, error)
	Delete(ctx context.Context, id int32) error

	// Approve flips PENDING to APPROVED; any other current status is an
	// invalid transition.
	Approve(ctx context.Context, id int32) error

	// Decline applies the decline effects in one transaction: delete the
	// analytics record if present, replace any existing decline feedback,
	// set status DECLINED. Fails on APPROVED projects.
	Decline(ctx context.Context, id, analystID int32, feedback string) error

	// Resubmit applies owner edits; when the project is DECLINED it also
	// clears the decline feedback and resets status to PENDING, all in the
	// same transaction. Fails on APPROVED projects.
	Resubmit(ctx context.Context, id int32, update *domain.ProjectUpdate) error

	GetFeedback(ctx context.Context, projectID int32) (*domain.DeclineFeedback, error)

	// Guarded counters. DecrementBookmarks reports false when the counter
	// was already at zero.
	IncrementBookmarks(ctx context.Context, id int32) error
	DecrementBookmarks(ctx context.Context, id int32) (bool, error)
	IncrementViews(ctx context.Context, id int32) error
	IncrementInteractions(ctx context.Context, id int32) error
}

type AssignmentRepository interface {
	// Create inserts the assignment and increments the project's
	// assignment count in one transaction, under a project row lock.
	// Returns domain.ErrConflict for a duplicate (project, analyst) pair
	// and domain.ErrCapacityExceeded at the ceiling.
	Create(ctx context.Context, projectID, analystID int32) error

	// Delete removes the assignment and decrements the count in one
	// transaction. A zero count alongside an existing assignment row is
	// surfaced as a data-integrity error, not clamped.
	Delete(ctx context.Context, projectID, analystID int32) error

	Exists(ctx context.Context, projectID, analystID int32) (bool, error)
	ListAnalysts(ctx context.Context, projectID int32) ([]domain.User, error)
	ListProjectsForAnalyst(ctx context.Context, analystID int32, status string) ([]domain.Project, error)
}

type AnalyticsRepository interface {
	// Create fails with domain.ErrConflict when the project already has a
	// record.
	Create(ctx context.Context, rec *domain.AnalyticsRecord) error
	GetByProject(ctx context.Context, projectID int32) (*domain.AnalyticsRecord, error)
	Update(ctx context.Context, rec *domain.AnalyticsRecord) error
	Enable(ctx context.Context, projectID int32) error

	// DeleteByProject is idempotent; deleting an absent record is a no-op.
	DeleteByProject(ctx context.Context, projectID int32) error
}

type CommunityRepository interface {
	Create(ctx context.Context, project *domain.CommunityProject) error
	GetByID(ctx context.Context, id int32) (*domain.CommunityProject, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.CommunityProject, int32, error)
	GetTeamSlot(ctx context.Context, projectID int32, teamName string) (*domain.TeamSlot, error)
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error)
	ExistsForUser(ctx context.Context, userID, communityProjectID int32) (bool, error)

	// Accept consumes one team slot and flips the request to ACCEPTED in a
	// single transaction; losing the race for the last slot returns
	// domain.ErrCapacityExceeded with the request untouched.
	Accept(ctx context.Context, id int32, reason string) error

	// Reject flips REQUESTED or ACCEPTED to REJECTED; the latter is the
	// reversal path and returns the consumed slot.
	Reject(ctx context.Context, id int32, reason string) error

	ListByProject(ctx context.Context, communityProjectID int32) ([]domain.JoinRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequest, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Subscription, error)

	// ListExpiredActive returns ACTIVE subscriptions whose end date has
	// passed; ExpireOne flips a single row under its own lock (the nightly
	// sweep commits per row).
	ListExpiredActive(ctx context.Context) ([]domain.Subscription, error)
	ExpireOne(ctx context.Context, id int32) (bool, error)

	// ListExpiringWithin returns ACTIVE, not-yet-reminded subscriptions
	// ending within the window, joined with the owner's email.
	ListExpiringWithin(ctx context.Context, hours int32) ([]domain.Subscription, []string, error)
	MarkReminderSent(ctx context.Context, id int32) error
}
