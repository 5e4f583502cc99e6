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

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create inserts the assignment and bumps the mirrored counter in one
// transaction. The project row lock serializes concurrent assigns so two
// callers cannot both pass the ceiling check.
func (r *assignmentRepository) Create(ctx context.Context, projectID, analystID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int32
	err = tx.QueryRowContext(ctx,
		`SELECT assignment_count FROM projects WHERE id = $1 FOR UPDATE`, projectID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		}
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM assignments WHERE project_id = $1 AND analyst_id = $2)`,
		projectID, analystID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("analyst %d already assigned to project %d: %w", analystID, projectID, domain.ErrConflict)
	}

	if count >= domain.MaxAssignments {
		return fmt.Errorf("project %d has %d assignments: %w", projectID, count, domain.ErrCapacityExceeded)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO assignments (project_id, analyst_id, created_on) VALUES ($1, $2, $3)`,
		projectID, analystID, time.Now())
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET assignment_count = assignment_count + 1 WHERE id = $1`, projectID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *assignmentRepository) Delete(ctx context.Context, projectID, analystID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int32
	err = tx.QueryRowContext(ctx,
		`SELECT assignment_count FROM projects WHERE id = $1 FOR UPDATE`, projectID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		}
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE project_id = $1 AND analyst_id = $2`, projectID, analystID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("assignment of analyst %d to project %d: %w", analystID, projectID, domain.ErrNotFound)
	}

	// An assignment row existed, so a zero counter means the mirror has
	// drifted; surface it instead of clamping.
	if count == 0 {
		return fmt.Errorf("project %d assignment_count is 0 with assignments present: data integrity fault", projectID)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET assignment_count = assignment_count - 1 WHERE id = $1`, projectID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *assignmentRepository) Exists(ctx context.Context, projectID, analystID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM assignments WHERE project_id = $1 AND analyst_id = $2)`,
		projectID, analystID).Scan(&exists)
	return exists, err
}

func (r *assignmentRepository) ListAnalysts(ctx context.Context, projectID int32) ([]domain.User, error) {
	query := `SELECT u.id, u.email, u.name, COALESCE(u.phone_number, ''), u.role, COALESCE(u.avatar_url, '')
	          FROM users u JOIN assignments a ON a.analyst_id = u.id
	          WHERE a.project_id = $1 ORDER BY a.created_on`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analysts []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhoneNumber, &u.Role, &u.AvatarURL); err != nil {
			return nil, err
		}
		analysts = append(analysts, u)
	}
	return analysts, rows.Err()
}

func (r *assignmentRepository) ListProjectsForAnalyst(ctx context.Context, analystID int32, status string) ([]domain.Project, error) {
	query := `SELECT ` + prefixedProjectColumns("p") + `
	          FROM projects p JOIN assignments a ON a.project_id = p.id
	          WHERE a.analyst_id = $1 AND ($2 = '' OR p.status = $2) ORDER BY a.created_on`
	rows, err := r.db.QueryContext(ctx, query, analystID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}
