package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/security"
	"launchpad-backend/internal/service"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60)

	t.Run("HashesPasswordAndCreates", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, domain.ErrNotFound).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@test.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")) == nil
		})).Return(nil).Once()

		user, err := svc.Register(ctx, "new@test.com", "New User", "", "hunter2", domain.UserRoleClient)
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleClient, user.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 1, Email: "taken@test.com"}, nil).Once()

		_, err := svc.Register(ctx, "taken@test.com", "", "", "pw", domain.UserRoleClient)
		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60)
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)

	t.Run("ValidCredentialsYieldToken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "user@test.com").Return(&domain.User{
			ID: 4, Email: "user@test.com", PasswordHash: string(hash), Role: domain.UserRoleClient,
		}, nil).Once()

		user, token, err := svc.Authenticate(ctx, "user@test.com", "hunter2")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, string(domain.UserRoleClient), claims.Role)
	})

	t.Run("WrongPasswordForbidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "user@test.com").Return(&domain.User{
			ID: 4, PasswordHash: string(hash),
		}, nil).Once()

		_, _, err := svc.Authenticate(ctx, "user@test.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
