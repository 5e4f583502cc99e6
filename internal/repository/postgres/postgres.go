package postgres

import (
	"database/sql"
	"errors"

	"launchpad-backend/internal/repository"

	"github.com/lib/pq"
)

// Store aggregates one repository per aggregate root, all sharing the
// same *sql.DB. The repositories carry overlapping method names, so they
// are exposed as named fields rather than embedded.
type Store struct {
	db *sql.DB

	Users         repository.UserRepository
	Projects      repository.ProjectRepository
	Assignments   repository.AssignmentRepository
	Analytics     repository.AnalyticsRepository
	Community     repository.CommunityRepository
	JoinRequests  repository.JoinRequestRepository
	Subscriptions repository.SubscriptionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:            db,
		Users:         NewUserRepository(db),
		Projects:      NewProjectRepository(db),
		Assignments:   NewAssignmentRepository(db),
		Analytics:     NewAnalyticsRepository(db),
		Community:     NewCommunityRepository(db),
		JoinRequests:  NewJoinRequestRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
	}
}

const dateLayout = "2006-01-02"

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
