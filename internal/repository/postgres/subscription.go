package postgres

import (
	"context"
	"database/sql"
	"time"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/repository"
)

type subscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, plan, status, end_date, reminder_sent, created_on)
	          VALUES ($1, $2, $3, $4, false, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		sub.UserID, sub.Plan, sub.Status, sub.EndDate, time.Now()).Scan(&sub.ID)
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Subscription, error) {
	query := `SELECT id, user_id, plan, status, end_date, reminder_sent, created_on
	          FROM subscriptions WHERE user_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

func (r *subscriptionRepository) ListExpiredActive(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT id, user_id, plan, status, end_date, reminder_sent, created_on
	          FROM subscriptions WHERE status = $1 AND end_date IS NOT NULL AND end_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.SubscriptionStatusActive, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// ExpireOne flips a single subscription to EXPIRED. The status and end-date
// conditions re-check the candidate under the implicit row lock of the
// UPDATE, so a sweep racing with request traffic touches each row at most
// once.
func (r *subscriptionRepository) ExpireOne(ctx context.Context, id int32) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET status = $1 WHERE id = $2 AND status = $3 AND end_date < $4`,
		domain.SubscriptionStatusExpired, id, domain.SubscriptionStatusActive, time.Now())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *subscriptionRepository) ListExpiringWithin(ctx context.Context, hours int32) ([]domain.Subscription, []string, error) {
	cutoff := time.Now().Add(time.Duration(hours) * time.Hour)
	query := `SELECT s.id, s.user_id, s.plan, s.status, s.end_date, s.reminder_sent, s.created_on, u.email
	          FROM subscriptions s JOIN users u ON u.id = s.user_id
	          WHERE s.status = $1 AND s.reminder_sent = false
	            AND s.end_date IS NOT NULL AND s.end_date > $2 AND s.end_date <= $3`
	rows, err := r.db.QueryContext(ctx, query, domain.SubscriptionStatusActive, time.Now(), cutoff)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	var emails []string
	for rows.Next() {
		var sub domain.Subscription
		var endDate sql.NullTime
		var createdOn time.Time
		var email string
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Plan, &sub.Status, &endDate,
			&sub.ReminderSent, &createdOn, &email); err != nil {
			return nil, nil, err
		}
		if endDate.Valid {
			sub.EndDate = &endDate.Time
		}
		sub.CreatedOn = createdOn.Format(dateLayout)
		subs = append(subs, sub)
		emails = append(emails, email)
	}
	return subs, emails, rows.Err()
}

func (r *subscriptionRepository) MarkReminderSent(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET reminder_sent = true WHERE id = $1`, id)
	return err
}

func scanSubscription(rows *sql.Rows) (*domain.Subscription, error) {
	sub := &domain.Subscription{}
	var endDate sql.NullTime
	var createdOn time.Time
	if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Plan, &sub.Status, &endDate,
		&sub.ReminderSent, &createdOn); err != nil {
		return nil, err
	}
	if endDate.Valid {
		sub.EndDate = &endDate.Time
	}
	sub.CreatedOn = createdOn.Format(dateLayout)
	return sub, nil
}
