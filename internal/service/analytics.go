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

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	projectRepo   repository.ProjectRepository
	subSvc        SubscriptionService
	fileStore     storage.FileStore
}

func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	projectRepo repository.ProjectRepository,
	subSvc SubscriptionService,
	fileStore storage.FileStore,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		projectRepo:   projectRepo,
		subSvc:        subSvc,
		fileStore:     fileStore,
	}
}

// Create attaches the single analytics record to a project. The bookmarks
// and monthly-income values are snapshotted from the project row at this
// moment and are not re-synced later.
func (s *analyticsService) Create(ctx context.Context, projectID int32, metrics domain.AnalyticsMetrics, documentURL string) (*domain.AnalyticsRecord, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rec := &domain.AnalyticsRecord{
		ProjectID:          projectID,
		FeasibilityScore:   metrics.FeasibilityScore,
		ProfitMarginBps:    metrics.ProfitMarginBps,
		PaybackMonths:      metrics.PaybackMonths,
		RequiredFunding:    metrics.RequiredFunding,
		MonthlyIncomeCents: project.MonthlyIncomeCents,
		Bookmarks:          project.BookmarkCount,
		DocumentURL:        documentURL,
	}
	if err := s.analyticsRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces the record's scalar fields while it is still editable.
// A nil documentURL keeps the current document; a new one replaces it and
// releases the old object best-effort.
func (s *analyticsService) Update(ctx context.Context, projectID int32, metrics domain.AnalyticsMetrics, documentURL *string) (*domain.AnalyticsRecord, error) {
	rec, err := s.analyticsRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if rec.Enabled {
		return nil, fmt.Errorf("analytics for project %d are enabled: %w", projectID, domain.ErrLocked)
	}

	oldDocument := rec.DocumentURL
	rec.FeasibilityScore = metrics.FeasibilityScore
	rec.ProfitMarginBps = metrics.ProfitMarginBps
	rec.PaybackMonths = metrics.PaybackMonths
	rec.RequiredFunding = metrics.RequiredFunding
	if documentURL != nil {
		rec.DocumentURL = *documentURL
	}

	if err := s.analyticsRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	if documentURL != nil && oldDocument != "" && oldDocument != *documentURL {
		if err := s.fileStore.DeleteURL(ctx, oldDocument); err != nil {
			logger.Warn("Failed to release replaced analytics document",
				"project_id", projectID, "error", err)
		}
	}
	return rec, nil
}

// Enable publishes the record. Irreversible through this interface.
func (s *analyticsService) Enable(ctx context.Context, projectID int32) error {
	return s.analyticsRepo.Enable(ctx, projectID)
}

// View returns the published record for plan-entitled requesters and
// counts the interaction on the project.
func (s *analyticsService) View(ctx context.Context, projectID, requesterID int32) (*domain.AnalyticsRecord, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	rec, err := s.analyticsRepo.GetByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("analytics for project %d: %w", projectID, domain.ErrGated)
		}
		return nil, err
	}
	if !rec.Enabled {
		return nil, fmt.Errorf("analytics for project %d: %w", projectID, domain.ErrGated)
	}

	plan, err := s.subSvc.EffectivePlan(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !plan.CanViewAnalytics() {
		return nil, fmt.Errorf("plan %s cannot view analytics: %w", plan, domain.ErrForbidden)
	}

	if err := s.projectRepo.IncrementInteractions(ctx, projectID); err != nil {
		logger.Warn("Failed to count analytics interaction", "project_id", projectID, "error", err)
	}
	return rec, nil
}

// Discard removes the record if present; a second call is a no-op.
func (s *analyticsService) Discard(ctx context.Context, projectID int32) error {
	return s.analyticsRepo.DeleteByProject(ctx, projectID)
}
