package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, name, phone_number, password_hash, role, avatar_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PhoneNumber, user.PasswordHash, user.Role, user.AvatarURL, time.Now(),
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, COALESCE(phone_number, ''), password_hash, role, COALESCE(avatar_url, ''), created_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.PhoneNumber, &user.PasswordHash, &user.Role, &user.AvatarURL, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	user.CreatedOn = createdOn.Format(dateLayout)
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, COALESCE(phone_number, ''), password_hash, role, COALESCE(avatar_url, ''), created_on
	          FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PhoneNumber, &user.PasswordHash, &user.Role, &user.AvatarURL, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, err
	}
	user.CreatedOn = createdOn.Format(dateLayout)
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $1, phone_number = $2, avatar_url = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.PhoneNumber, user.AvatarURL, user.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("user %d: %w", user.ID, domain.ErrNotFound)
	}
	return nil
}
