package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad-backend/internal/domain"
)

func TestSubscriptionRepository_ExpireOne(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSubscriptionRepository(db)

	mock.ExpectExec(`UPDATE subscriptions SET status = \$1 WHERE id = \$2 AND status = \$3 AND end_date < \$4`).
		WithArgs(domain.SubscriptionStatusExpired, int32(7), domain.SubscriptionStatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ExpireOne(ctx, 7)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Already expired by a concurrent sweep: the re-check matches nothing.
	mock.ExpectExec(`UPDATE subscriptions SET status = \$1 WHERE id = \$2 AND status = \$3 AND end_date < \$4`).
		WithArgs(domain.SubscriptionStatusExpired, int32(7), domain.SubscriptionStatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.ExpireOne(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
