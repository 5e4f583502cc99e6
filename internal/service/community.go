package service

import (
	"context"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type communityService struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
}

func NewCommunityService(communityRepo repository.CommunityRepository, userRepo repository.UserRepository) CommunityService {
	return &communityService{communityRepo: communityRepo, userRepo: userRepo}
}

func (s *communityService) Create(ctx context.Context, ownerID int32, project *domain.CommunityProject) error {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return err
	}
	if len(project.Teams) == 0 {
		return fmt.Errorf("community project needs at least one team: %w", domain.ErrInvalidTransition)
	}
	for _, team := range project.Teams {
		if team.RemainingSlots < 0 {
			return fmt.Errorf("team %q has negative slots: %w", team.Name, domain.ErrInvalidTransition)
		}
	}
	project.OwnerID = ownerID
	return s.communityRepo.Create(ctx, project)
}

func (s *communityService) Get(ctx context.Context, id int32) (*domain.CommunityProject, error) {
	return s.communityRepo.GetByID(ctx, id)
}

func (s *communityService) List(ctx context.Context, page, pageSize int32) ([]domain.CommunityProject, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.communityRepo.List(ctx, page, pageSize)
}
