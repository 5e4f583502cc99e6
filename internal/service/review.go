package service

import (
	"context"
	"errors"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository"
	"launchpad-backend/internal/storage"
)

type reviewService struct {
	projectRepo   repository.ProjectRepository
	analyticsRepo repository.AnalyticsRepository
	userRepo      repository.UserRepository
	subSvc        SubscriptionService
	emailSvc      EmailService
	fileStore     storage.FileStore
}

func NewReviewService(
	projectRepo repository.ProjectRepository,
	analyticsRepo repository.AnalyticsRepository,
	userRepo repository.UserRepository,
	subSvc SubscriptionService,
	emailSvc EmailService,
	fileStore storage.FileStore,
) ReviewService {
	return &reviewService{
		projectRepo:   projectRepo,
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		subSvc:        subSvc,
		emailSvc:      emailSvc,
		fileStore:     fileStore,
	}
}

// Submit creates a launch project in PENDING. Launching is plan-gated:
// users whose effective plan is FREE cannot submit.
func (s *reviewService) Submit(ctx context.Context, ownerID int32, project *domain.Project) (*domain.Project, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	plan, err := s.subSvc.EffectivePlan(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !plan.CanLaunch() {
		return nil, fmt.Errorf("plan %s cannot launch projects: %w", plan, domain.ErrForbidden)
	}

	project.OwnerID = ownerID
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *reviewService) Approve(ctx context.Context, projectID int32) error {
	return s.projectRepo.Approve(ctx, projectID)
}

// Decline records the analyst's feedback, drops any analytics record and
// flips the project to DECLINED, all in one transaction. The analytics
// document, if any, is released afterwards best-effort.
func (s *reviewService) Decline(ctx context.Context, projectID, analystID int32, feedback string) error {
	analyst, err := s.userRepo.GetByID(ctx, analystID)
	if err != nil {
		return err
	}
	if !analyst.IsAnalyst() {
		return fmt.Errorf("user %d is not an analyst: %w", analystID, domain.ErrForbidden)
	}

	var documentURL string
	if rec, err := s.analyticsRepo.GetByProject(ctx, projectID); err == nil {
		documentURL = rec.DocumentURL
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if err := s.projectRepo.Decline(ctx, projectID, analystID, feedback); err != nil {
		return err
	}

	if documentURL != "" {
		if err := s.fileStore.DeleteURL(ctx, documentURL); err != nil {
			logger.Warn("Failed to release analytics document after decline",
				"project_id", projectID, "error", err)
		}
	}

	s.notifyOwnerOfDecline(ctx, projectID, feedback)
	return nil
}

// Resubmit applies the owner's edits. Files follow a replace-or-remove
// pattern: a changed URL releases the old object, a nil field releases and
// clears it. Releases are best-effort; a storage failure never blocks the
// metadata update.
func (s *reviewService) Resubmit(ctx context.Context, ownerID, projectID int32, update *domain.ProjectUpdate) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != ownerID {
		return fmt.Errorf("project %d is not owned by user %d: %w", projectID, ownerID, domain.ErrForbidden)
	}
	if project.Status == domain.ProjectStatusApproved {
		return fmt.Errorf("edit approved project %d: %w", projectID, domain.ErrForbidden)
	}

	if err := s.projectRepo.Resubmit(ctx, projectID, update); err != nil {
		return err
	}

	s.releaseReplaced(ctx, project.PhotoURL, update.PhotoURL)
	s.releaseReplaced(ctx, project.VideoURL, update.VideoURL)
	s.releaseReplaced(ctx, project.DocumentURL, update.DocumentURL)
	return nil
}

func (s *reviewService) GetFeedback(ctx context.Context, projectID int32) (*domain.DeclineFeedback, error) {
	return s.projectRepo.GetFeedback(ctx, projectID)
}

func (s *reviewService) releaseReplaced(ctx context.Context, oldURL string, newURL *string) {
	if oldURL == "" {
		return
	}
	if newURL != nil && *newURL == oldURL {
		return
	}
	if err := s.fileStore.DeleteURL(ctx, oldURL); err != nil {
		logger.Warn("Failed to release replaced file", "url", oldURL, "error", err)
	}
}

func (s *reviewService) notifyOwnerOfDecline(ctx context.Context, projectID int32, feedback string) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		logger.Warn("Failed to load project for decline notification", "project_id", projectID, "error", err)
		return
	}
	owner, err := s.userRepo.GetByID(ctx, project.OwnerID)
	if err != nil {
		logger.Warn("Failed to load owner for decline notification", "project_id", projectID, "error", err)
		return
	}
	if err := s.emailSvc.SendDeclineNotification(ctx, owner.Email, project.Title, feedback); err != nil {
		logger.Warn("Failed to send decline notification", "project_id", projectID, "error", err)
	}
}
