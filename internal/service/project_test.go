package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

func TestProjectService_Unbookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("DecrementsWhenPositive", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		svc := service.NewProjectService(projectRepo, new(MockSubscriptionService))

		projectRepo.On("DecrementBookmarks", ctx, int32(10)).Return(true, nil).Once()

		assert.NoError(t, svc.Unbookmark(ctx, 10))
		projectRepo.AssertExpectations(t)
	})

	t.Run("ZeroCounterConflicts", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		svc := service.NewProjectService(projectRepo, new(MockSubscriptionService))

		projectRepo.On("DecrementBookmarks", ctx, int32(10)).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Unbookmark(ctx, 10), domain.ErrConflict)
	})
}

func TestProjectService_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("PremiumOrdersAndCounts", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		subSvc := new(MockSubscriptionService)
		svc := service.NewProjectService(projectRepo, subSvc)

		projectRepo.On("GetByID", ctx, int32(10)).Return(&domain.Project{ID: 10}, nil).Once()
		subSvc.On("EffectivePlan", ctx, int32(4)).Return(domain.PlanPremium, nil).Once()
		projectRepo.On("IncrementInteractions", ctx, int32(10)).Return(nil).Once()

		assert.NoError(t, svc.Order(ctx, 4, 10))
		projectRepo.AssertExpectations(t)
	})

	t.Run("BasicPlanForbidden", func(t *testing.T) {
		projectRepo := new(MockProjectRepo)
		subSvc := new(MockSubscriptionService)
		svc := service.NewProjectService(projectRepo, subSvc)

		projectRepo.On("GetByID", ctx, int32(10)).Return(&domain.Project{ID: 10}, nil).Once()
		subSvc.On("EffectivePlan", ctx, int32(4)).Return(domain.PlanBasic, nil).Once()

		assert.ErrorIs(t, svc.Order(ctx, 4, 10), domain.ErrForbidden)
		projectRepo.AssertNotCalled(t, "IncrementInteractions", mock.Anything, mock.Anything)
	})
}

func TestProjectService_View(t *testing.T) {
	ctx := context.Background()
	projectRepo := new(MockProjectRepo)
	svc := service.NewProjectService(projectRepo, new(MockSubscriptionService))

	projectRepo.On("GetByID", ctx, int32(10)).Return(&domain.Project{ID: 10, Title: "Bakery"}, nil).Once()
	projectRepo.On("IncrementViews", ctx, int32(10)).Return(assert.AnError).Once()

	// A failed view-count bump does not fail the read.
	project, err := svc.View(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, "Bakery", project.Title)
	projectRepo.AssertExpectations(t)
}
