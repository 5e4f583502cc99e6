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

type communityRepository struct {
	db *sql.DB
}

func NewCommunityRepository(db *sql.DB) repository.CommunityRepository {
	return &communityRepository{db: db}
}

// Create inserts the community project together with its team slots; a
// project without teams cannot receive join requests, so the two go in one
// transaction.
func (r *communityRepository) Create(ctx context.Context, project *domain.CommunityProject) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO community_projects (owner_id, title, description, status, created_on)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		project.OwnerID, project.Title, project.Description, domain.ProjectStatusPending, time.Now(),
	).Scan(&project.ID)
	if err != nil {
		return err
	}
	project.Status = domain.ProjectStatusPending

	for i := range project.Teams {
		team := &project.Teams[i]
		team.CommunityProjectID = project.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO team_slots (community_project_id, name, remaining_slots) VALUES ($1, $2, $3) RETURNING id`,
			project.ID, team.Name, team.RemainingSlots,
		).Scan(&team.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *communityRepository) GetByID(ctx context.Context, id int32) (*domain.CommunityProject, error) {
	project := &domain.CommunityProject{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, title, description, status, created_on FROM community_projects WHERE id = $1`,
		id).Scan(&project.ID, &project.OwnerID, &project.Title, &project.Description, &project.Status, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("community project %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	project.CreatedOn = createdOn.Format(dateLayout)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, community_project_id, name, remaining_slots FROM team_slots WHERE community_project_id = $1 ORDER BY id`,
		id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var team domain.TeamSlot
		if err := rows.Scan(&team.ID, &team.CommunityProjectID, &team.Name, &team.RemainingSlots); err != nil {
			return nil, err
		}
		project.Teams = append(project.Teams, team)
	}
	return project, rows.Err()
}

func (r *communityRepository) List(ctx context.Context, page, pageSize int32) ([]domain.CommunityProject, int32, error) {
	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, title, description, status, created_on
		 FROM community_projects ORDER BY created_on DESC LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []domain.CommunityProject
	for rows.Next() {
		var p domain.CommunityProject
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Status, &createdOn); err != nil {
			return nil, 0, err
		}
		p.CreatedOn = createdOn.Format(dateLayout)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM community_projects`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return projects, count, nil
}

func (r *communityRepository) GetTeamSlot(ctx context.Context, projectID int32, teamName string) (*domain.TeamSlot, error) {
	team := &domain.TeamSlot{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, community_project_id, name, remaining_slots FROM team_slots
		 WHERE community_project_id = $1 AND name = $2`,
		projectID, teamName).Scan(&team.ID, &team.CommunityProjectID, &team.Name, &team.RemainingSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %q on community project %d: %w", teamName, projectID, domain.ErrNotFound)
		}
		return nil, err
	}
	return team, nil
}
