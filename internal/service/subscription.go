package service

import (
	"context"
	"fmt"
	"time"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type subscriptionService struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository) SubscriptionService {
	return &subscriptionService{subRepo: subRepo, userRepo: userRepo}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID int32, plan domain.Plan, endDate *time.Time) (*domain.Subscription, error) {
	if plan.Rank() == 0 {
		return nil, fmt.Errorf("unknown plan %q: %w", plan, domain.ErrNotFound)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if endDate != nil && endDate.Before(time.Now()) {
		return nil, fmt.Errorf("subscription end date in the past: %w", domain.ErrInvalidTransition)
	}

	sub := &domain.Subscription{
		UserID:  userID,
		Plan:    plan,
		Status:  domain.SubscriptionStatusActive,
		EndDate: endDate,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) ListForUser(ctx context.Context, userID int32) ([]domain.Subscription, error) {
	return s.subRepo.ListByUser(ctx, userID)
}

// EffectivePlan resolves the user's current plan from all their
// subscriptions; a user with none, or only expired ones, is on FREE.
func (s *subscriptionService) EffectivePlan(ctx context.Context, userID int32) (domain.Plan, error) {
	subs, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return domain.EffectivePlan(subs), nil
}
