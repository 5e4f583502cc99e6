package service

import (
	"context"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
	}
}

// Assign attaches an analyst to a project. The duplicate and ceiling checks
// live in the repository transaction; this layer validates that the target
// actually is an analyst.
func (s *assignmentService) Assign(ctx context.Context, projectID, analystID int32) error {
	analyst, err := s.userRepo.GetByID(ctx, analystID)
	if err != nil {
		return err
	}
	if !analyst.IsAnalyst() {
		return fmt.Errorf("user %d is not an analyst: %w", analystID, domain.ErrNotFound)
	}
	return s.assignmentRepo.Create(ctx, projectID, analystID)
}

func (s *assignmentService) Unassign(ctx context.Context, projectID, analystID int32) error {
	return s.assignmentRepo.Delete(ctx, projectID, analystID)
}

func (s *assignmentService) ListAnalystsForProject(ctx context.Context, projectID int32) ([]domain.User, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListAnalysts(ctx, projectID)
}

func (s *assignmentService) ListAssignedProjects(ctx context.Context, analystID int32, status domain.ProjectStatus) ([]domain.Project, error) {
	if status == "" {
		status = domain.ProjectStatusPending
	}
	return s.assignmentRepo.ListProjectsForAnalyst(ctx, analystID, string(status))
}
