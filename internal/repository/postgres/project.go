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

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, owner_id, title, description, category, status, assignment_count,
	bookmark_count, view_count, interaction_count, monthly_income_cents,
	COALESCE(photo_url, ''), COALESCE(video_url, ''), COALESCE(document_url, ''), created_on, updated_on`

// prefixedProjectColumns qualifies the project column list with a table
// alias for joined queries.
func prefixedProjectColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.owner_id, %[1]s.title, %[1]s.description, %[1]s.category,
	%[1]s.status, %[1]s.assignment_count, %[1]s.bookmark_count, %[1]s.view_count,
	%[1]s.interaction_count, %[1]s.monthly_income_cents, COALESCE(%[1]s.photo_url, ''),
	COALESCE(%[1]s.video_url, ''), COALESCE(%[1]s.document_url, ''), %[1]s.created_on, %[1]s.updated_on`, alias)
}

func scanProject(row interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	p := &domain.Project{}
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Category, &p.Status, &p.AssignmentCount,
		&p.BookmarkCount, &p.ViewCount, &p.InteractionCount, &p.MonthlyIncomeCents,
		&p.PhotoURL, &p.VideoURL, &p.DocumentURL, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format(dateLayout)
	p.UpdatedOn = updatedOn.Format(dateLayout)
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (owner_id, title, description, category, status, monthly_income_cents,
	              photo_url, video_url, document_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	now := time.Now()
	project.Status = domain.ProjectStatusPending
	return r.db.QueryRowContext(ctx, query,
		project.OwnerID, project.Title, project.Description, project.Category, project.Status,
		project.MonthlyIncomeCents, project.PhotoURL, project.VideoURL, project.DocumentURL, now,
	).Scan(&project.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Project, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + projectColumns + ` FROM projects
	          WHERE ($1 = '' OR status = $1) ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM projects WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&count); err != nil {
		return nil, 0, err
	}
	return projects, count, nil
}

func (r *projectRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
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

// Delete removes the project row; assignments, analytics and decline
// feedback go with it via ON DELETE CASCADE.
func (r *projectRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *projectRepository) Approve(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, err := lockProjectStatus(ctx, tx, id)
	if err != nil {
		return err
	}
	if status != domain.ProjectStatusPending {
		return fmt.Errorf("approve project %d in status %s: %w", id, status, domain.ErrInvalidTransition)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET status = $1, updated_on = $2 WHERE id = $3`,
		domain.ProjectStatusApproved, time.Now(), id)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *projectRepository) Decline(ctx context.Context, id, analystID int32, feedback string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, err := lockProjectStatus(ctx, tx, id)
	if err != nil {
		return err
	}
	if status == domain.ProjectStatusApproved {
		return fmt.Errorf("decline approved project %d: %w", id, domain.ErrInvalidTransition)
	}

	// Decline effects are all-or-nothing: drop analytics, replace any
	// previous feedback, flip the status.
	if _, err := tx.ExecContext(ctx, `DELETE FROM analytics_records WHERE project_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM decline_feedback WHERE project_id = $1`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO decline_feedback (project_id, analyst_id, feedback, created_on) VALUES ($1, $2, $3, $4)`,
		id, analystID, feedback, time.Now())
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET status = $1, updated_on = $2 WHERE id = $3`,
		domain.ProjectStatusDeclined, time.Now(), id)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *projectRepository) Resubmit(ctx context.Context, id int32, update *domain.ProjectUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, err := lockProjectStatus(ctx, tx, id)
	if err != nil {
		return err
	}
	if status == domain.ProjectStatusApproved {
		return fmt.Errorf("edit approved project %d: %w", id, domain.ErrForbidden)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET title = $1, description = $2, category = $3, monthly_income_cents = $4,
		        photo_url = $5, video_url = $6, document_url = $7, updated_on = $8
		 WHERE id = $9`,
		update.Title, update.Description, update.Category, update.MonthlyIncomeCents,
		update.PhotoURL, update.VideoURL, update.DocumentURL, time.Now(), id)
	if err != nil {
		return err
	}

	if status == domain.ProjectStatusDeclined {
		if _, err := tx.ExecContext(ctx, `DELETE FROM decline_feedback WHERE project_id = $1`, id); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE projects SET status = $1 WHERE id = $2`, domain.ProjectStatusPending, id)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *projectRepository) GetFeedback(ctx context.Context, projectID int32) (*domain.DeclineFeedback, error) {
	fb := &domain.DeclineFeedback{}
	var createdOn time.Time
	query := `SELECT id, project_id, analyst_id, feedback, created_on FROM decline_feedback WHERE project_id = $1`
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&fb.ID, &fb.ProjectID, &fb.AnalystID, &fb.Text, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feedback for project %d: %w", projectID, domain.ErrNotFound)
		}
		return nil, err
	}
	fb.CreatedOn = createdOn.Format(dateLayout)
	return fb, nil
}

func (r *projectRepository) IncrementBookmarks(ctx context.Context, id int32) error {
	return r.bumpCounter(ctx, `UPDATE projects SET bookmark_count = bookmark_count + 1 WHERE id = $1`, id)
}

// DecrementBookmarks is a guarded decrement: the WHERE clause keeps the
// counter from going below zero and RowsAffected reports whether anything
// actually changed.
func (r *projectRepository) DecrementBookmarks(ctx context.Context, id int32) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET bookmark_count = bookmark_count - 1 WHERE id = $1 AND bookmark_count > 0`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *projectRepository) IncrementViews(ctx context.Context, id int32) error {
	return r.bumpCounter(ctx, `UPDATE projects SET view_count = view_count + 1 WHERE id = $1`, id)
}

func (r *projectRepository) IncrementInteractions(ctx context.Context, id int32) error {
	return r.bumpCounter(ctx, `UPDATE projects SET interaction_count = interaction_count + 1 WHERE id = $1`, id)
}

func (r *projectRepository) bumpCounter(ctx context.Context, query string, id int32) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// lockProjectStatus takes the project row lock that serializes all status
// transitions and counter mutations on one project.
func lockProjectStatus(ctx context.Context, tx *sql.Tx, id int32) (domain.ProjectStatus, error) {
	var status domain.ProjectStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM projects WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return "", err
	}
	return status, nil
}
