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

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Create inserts the single analytics record for a project. The project row
// lock plus the existence check close the race between two concurrent
// creates; the unique index on project_id is the backstop.
func (r *analyticsRepository) Create(ctx context.Context, rec *domain.AnalyticsRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := lockProjectStatus(ctx, tx, rec.ProjectID); err != nil {
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM analytics_records WHERE project_id = $1)`, rec.ProjectID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("analytics for project %d already exist: %w", rec.ProjectID, domain.ErrConflict)
	}

	now := time.Now()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO analytics_records (project_id, feasibility_score, profit_margin_bps, payback_months,
		     required_funding_cents, monthly_income_cents, bookmarks, enabled, document_url, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9, $9) RETURNING id`,
		rec.ProjectID, rec.FeasibilityScore, rec.ProfitMarginBps, rec.PaybackMonths,
		rec.RequiredFunding, rec.MonthlyIncomeCents, rec.Bookmarks, rec.DocumentURL, now,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *analyticsRepository) GetByProject(ctx context.Context, projectID int32) (*domain.AnalyticsRecord, error) {
	rec := &domain.AnalyticsRecord{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, project_id, feasibility_score, profit_margin_bps, payback_months,
	              required_funding_cents, monthly_income_cents, bookmarks, enabled,
	              COALESCE(document_url, ''), created_on, updated_on
	          FROM analytics_records WHERE project_id = $1`
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&rec.ID, &rec.ProjectID, &rec.FeasibilityScore, &rec.ProfitMarginBps, &rec.PaybackMonths,
		&rec.RequiredFunding, &rec.MonthlyIncomeCents, &rec.Bookmarks, &rec.Enabled,
		&rec.DocumentURL, &createdOn, &updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analytics for project %d: %w", projectID, domain.ErrNotFound)
		}
		return nil, err
	}
	rec.CreatedOn = createdOn.Format(dateLayout)
	rec.UpdatedOn = updatedOn.Format(dateLayout)
	return rec, nil
}

// Update replaces the scalar fields. The enabled = false guard makes the
// lock check race-free: a record enabled by a concurrent caller is simply
// not matched.
func (r *analyticsRepository) Update(ctx context.Context, rec *domain.AnalyticsRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE analytics_records
		 SET feasibility_score = $1, profit_margin_bps = $2, payback_months = $3,
		     required_funding_cents = $4, document_url = $5, updated_on = $6
		 WHERE project_id = $7 AND enabled = false`,
		rec.FeasibilityScore, rec.ProfitMarginBps, rec.PaybackMonths,
		rec.RequiredFunding, rec.DocumentURL, time.Now(), rec.ProjectID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Distinguish missing from locked.
		var enabled bool
		err := r.db.QueryRowContext(ctx,
			`SELECT enabled FROM analytics_records WHERE project_id = $1`, rec.ProjectID).Scan(&enabled)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("analytics for project %d: %w", rec.ProjectID, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return fmt.Errorf("analytics for project %d are enabled: %w", rec.ProjectID, domain.ErrLocked)
	}
	return nil
}

func (r *analyticsRepository) Enable(ctx context.Context, projectID int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE analytics_records SET enabled = true, updated_on = $1 WHERE project_id = $2`,
		time.Now(), projectID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("analytics for project %d: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByProject is idempotent; a second call affects zero rows and
// succeeds.
func (r *analyticsRepository) DeleteByProject(ctx context.Context, projectID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM analytics_records WHERE project_id = $1`, projectID)
	return err
}
