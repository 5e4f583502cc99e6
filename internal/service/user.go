package service

import (
	"context"
	"errors"
	"fmt"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
	"launchpad-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens security.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, email, name, phone, password string, role domain.UserRole) (*domain.User, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("user %s already exists: %w", email, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrForbidden)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	return s.userRepo.Update(ctx, user)
}
