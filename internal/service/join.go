package service

import (
	"context"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository"
)

type joinService struct {
	joinRepo      repository.JoinRequestRepository
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
}

func NewJoinService(
	joinRepo repository.JoinRequestRepository,
	communityRepo repository.CommunityRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) JoinService {
	return &joinService{
		joinRepo:      joinRepo,
		communityRepo: communityRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

// RequestJoin admits a join request against a named team. No slot is
// consumed here; capacity is only checked so that obviously futile
// requests are refused up front. One request per (user, project), ever;
// a rejected user does not get a second attempt.
func (s *joinService) RequestJoin(ctx context.Context, userID, communityProjectID int32, teamName, description string) (*domain.JoinRequest, error) {
	project, err := s.communityRepo.GetByID(ctx, communityProjectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID == userID {
		return nil, fmt.Errorf("user %d owns community project %d: %w", userID, communityProjectID, domain.ErrForbidden)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	team, err := s.communityRepo.GetTeamSlot(ctx, communityProjectID, teamName)
	if err != nil {
		return nil, err
	}

	exists, err := s.joinRepo.ExistsForUser(ctx, userID, communityProjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("join request for user %d on project %d: %w", userID, communityProjectID, domain.ErrConflict)
	}

	if team.RemainingSlots <= 0 {
		return nil, fmt.Errorf("team %q is full: %w", teamName, domain.ErrCapacityExceeded)
	}

	req := &domain.JoinRequest{
		CommunityProjectID: communityProjectID,
		TeamSlotID:         team.ID,
		TeamName:           team.Name,
		UserID:             userID,
		Description:        description,
	}
	if err := s.joinRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Decide resolves a join request. Accepting consumes a slot; rejecting an
// accepted request is the reversal path and returns it. The counter work
// happens inside the repository transaction, so the status only moves when
// the slot accounting succeeded.
func (s *joinService) Decide(ctx context.Context, joinRequestID int32, action domain.JoinRequestStatus, reason string) error {
	switch action {
	case domain.JoinRequestStatusAccepted:
		if err := s.joinRepo.Accept(ctx, joinRequestID, reason); err != nil {
			return err
		}
	case domain.JoinRequestStatusRejected:
		if err := s.joinRepo.Reject(ctx, joinRequestID, reason); err != nil {
			return err
		}
	default:
		return fmt.Errorf("decision %q: %w", action, domain.ErrInvalidTransition)
	}

	s.notifyRequester(ctx, joinRequestID, action == domain.JoinRequestStatusAccepted, reason)
	return nil
}

func (s *joinService) ListForProject(ctx context.Context, communityProjectID int32) ([]domain.JoinRequest, error) {
	if _, err := s.communityRepo.GetByID(ctx, communityProjectID); err != nil {
		return nil, err
	}
	return s.joinRepo.ListByProject(ctx, communityProjectID)
}

func (s *joinService) ListForUser(ctx context.Context, userID int32) ([]domain.JoinRequest, error) {
	return s.joinRepo.ListByUser(ctx, userID)
}

func (s *joinService) notifyRequester(ctx context.Context, joinRequestID int32, accepted bool, reason string) {
	req, err := s.joinRepo.GetByID(ctx, joinRequestID)
	if err != nil {
		logger.Warn("Failed to load join request for notification", "join_request_id", joinRequestID, "error", err)
		return
	}
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Warn("Failed to load requester for notification", "join_request_id", joinRequestID, "error", err)
		return
	}
	project, err := s.communityRepo.GetByID(ctx, req.CommunityProjectID)
	if err != nil {
		logger.Warn("Failed to load community project for notification", "join_request_id", joinRequestID, "error", err)
		return
	}
	if err := s.emailSvc.SendJoinDecision(ctx, user.Email, project.Title, req.TeamName, accepted, reason); err != nil {
		logger.Warn("Failed to send join decision email", "join_request_id", joinRequestID, "error", err)
	}
}
