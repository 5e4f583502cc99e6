package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO join_requests (community_project_id, team_slot_id, user_id, description, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	req.Status = domain.JoinRequestStatusRequested
	err := r.db.QueryRowContext(ctx, query,
		req.CommunityProjectID, req.TeamSlotID, req.UserID, req.Description, req.Status, time.Now(),
	).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("join request for user %d on project %d: %w",
				req.UserID, req.CommunityProjectID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, `
		SELECT jr.id, jr.community_project_id, jr.team_slot_id, ts.name, jr.user_id,
		       jr.description, jr.status, COALESCE(jr.decision_reason, ''), jr.created_on
		FROM join_requests jr JOIN team_slots ts ON ts.id = jr.team_slot_id
		WHERE jr.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("join request %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return req, nil
}

func (r *joinRequestRepository) ExistsForUser(ctx context.Context, userID, communityProjectID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM join_requests WHERE user_id = $1 AND community_project_id = $2)`,
		userID, communityProjectID).Scan(&exists)
	return exists, err
}

// Accept flips REQUESTED to ACCEPTED and consumes one team slot. The
// request row lock serializes decisions on the same request; the guarded
// slot decrement decides the race for the last seat.
func (r *joinRequestRepository) Accept(ctx context.Context, id int32, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, teamSlotID, err := lockJoinRequest(ctx, tx, id)
	if err != nil {
		return err
	}
	if status != domain.JoinRequestStatusRequested {
		return fmt.Errorf("accept join request %d in status %s: %w", id, status, domain.ErrConflict)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE team_slots SET remaining_slots = remaining_slots - 1 WHERE id = $1 AND remaining_slots > 0`,
		teamSlotID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("team slot %d has no remaining seats: %w", teamSlotID, domain.ErrCapacityExceeded)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE join_requests SET status = $1, decision_reason = $2 WHERE id = $3`,
		domain.JoinRequestStatusAccepted, reason, id)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Reject flips REQUESTED or ACCEPTED to REJECTED. Rejecting an accepted
// request is the reversal path and returns the consumed slot.
func (r *joinRequestRepository) Reject(ctx context.Context, id int32, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, teamSlotID, err := lockJoinRequest(ctx, tx, id)
	if err != nil {
		return err
	}
	switch status {
	case domain.JoinRequestStatusRequested:
		// No slot was consumed yet.
	case domain.JoinRequestStatusAccepted:
		_, err = tx.ExecContext(ctx,
			`UPDATE team_slots SET remaining_slots = remaining_slots + 1 WHERE id = $1`, teamSlotID)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("reject join request %d in status %s: %w", id, status, domain.ErrConflict)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE join_requests SET status = $1, decision_reason = $2 WHERE id = $3`,
		domain.JoinRequestStatusRejected, reason, id)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *joinRequestRepository) ListByProject(ctx context.Context, communityProjectID int32) ([]domain.JoinRequest, error) {
	return r.list(ctx, `jr.community_project_id = $1`, communityProjectID)
}

func (r *joinRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.JoinRequest, error) {
	return r.list(ctx, `jr.user_id = $1`, userID)
}

func (r *joinRequestRepository) list(ctx context.Context, where string, arg any) ([]domain.JoinRequest, error) {
	query := `SELECT jr.id, jr.community_project_id, jr.team_slot_id, ts.name, jr.user_id,
	              jr.description, jr.status, COALESCE(jr.decision_reason, ''), jr.created_on
	          FROM join_requests jr JOIN team_slots ts ON ts.id = jr.team_slot_id
	          WHERE ` + where + ` ORDER BY jr.created_on`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func scanJoinRequest(row interface {
	Scan(dest ...any) error
}) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	var createdOn time.Time
	err := row.Scan(&req.ID, &req.CommunityProjectID, &req.TeamSlotID, &req.TeamName, &req.UserID,
		&req.Description, &req.Status, &req.DecisionReason, &createdOn)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format(dateLayout)
	return req, nil
}

func lockJoinRequest(ctx context.Context, tx *sql.Tx, id int32) (domain.JoinRequestStatus, int32, error) {
	var status domain.JoinRequestStatus
	var teamSlotID int32
	err := tx.QueryRowContext(ctx,
		`SELECT status, team_slot_id FROM join_requests WHERE id = $1 FOR UPDATE`, id).Scan(&status, &teamSlotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, fmt.Errorf("join request %d: %w", id, domain.ErrNotFound)
		}
		return "", 0, err
	}
	return status, teamSlotID, nil
}
