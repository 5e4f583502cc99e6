package service

import (
	"context"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	subSvc      SubscriptionService
}

func NewProjectService(projectRepo repository.ProjectRepository, subSvc SubscriptionService) ProjectService {
	return &projectService{projectRepo: projectRepo, subSvc: subSvc}
}

func (s *projectService) Get(ctx context.Context, id int32) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// View is Get with a view-count bump; a failed bump does not fail the read.
func (s *projectService) View(ctx context.Context, id int32) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to count project view", "project_id", id, "error", err)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Project, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.projectRepo.List(ctx, status, page, pageSize)
}

func (s *projectService) ListMine(ctx context.Context, ownerID int32) ([]domain.Project, error) {
	return s.projectRepo.ListByOwner(ctx, ownerID)
}

func (s *projectService) Bookmark(ctx context.Context, projectID int32) error {
	return s.projectRepo.IncrementBookmarks(ctx, projectID)
}

// Unbookmark treats an already-zero counter as a caller error rather than
// silently succeeding.
func (s *projectService) Unbookmark(ctx context.Context, projectID int32) error {
	ok, err := s.projectRepo.DecrementBookmarks(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %d has no bookmarks: %w", projectID, domain.ErrConflict)
	}
	return nil
}

// Order is the plan-gated custom-project order: FREE and BASIC plans are
// refused. The order itself counts as an interaction on the project.
func (s *projectService) Order(ctx context.Context, userID, projectID int32) error {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return err
	}
	plan, err := s.subSvc.EffectivePlan(ctx, userID)
	if err != nil {
		return err
	}
	if !plan.CanOrder() {
		return fmt.Errorf("plan %s cannot order projects: %w", plan, domain.ErrForbidden)
	}
	return s.projectRepo.IncrementInteractions(ctx, projectID)
}
