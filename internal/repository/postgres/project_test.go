package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad-backend/internal/domain"
)

func TestProjectRepository_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingApproved", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
		mock.ExpectExec(`UPDATE projects SET status = \$1`).
			WithArgs(domain.ProjectStatusApproved, sqlmock.AnyArg(), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Approve(ctx, 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeclinedIsInvalidTransition", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("DECLINED"))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Approve(ctx, 10), domain.ErrInvalidTransition)
	})
}

func TestProjectRepository_Decline(t *testing.T) {
	ctx := context.Background()

	t.Run("DropsAnalyticsReplacesFeedbackFlipsStatus", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
		mock.ExpectExec(`DELETE FROM analytics_records WHERE project_id = \$1`).
			WithArgs(int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM decline_feedback WHERE project_id = \$1`).
			WithArgs(int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO decline_feedback`).
			WithArgs(int32(10), int32(2), "weak financials", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE projects SET status = \$1`).
			WithArgs(domain.ProjectStatusDeclined, sqlmock.AnyArg(), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Decline(ctx, 10, 2, "weak financials"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ApprovedIsInvalidTransition", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("APPROVED"))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Decline(ctx, 10, 2, "late"), domain.ErrInvalidTransition)
	})
}

func TestProjectRepository_DecrementBookmarks(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewProjectRepository(db)

	mock.ExpectExec(`UPDATE projects SET bookmark_count = bookmark_count - 1 WHERE id = \$1 AND bookmark_count > 0`).
		WithArgs(int32(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.DecrementBookmarks(ctx, 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Guarded update touches no row once the counter reaches zero.
	mock.ExpectExec(`UPDATE projects SET bookmark_count = bookmark_count - 1 WHERE id = \$1 AND bookmark_count > 0`).
		WithArgs(int32(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.DecrementBookmarks(ctx, 10)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Resubmit(t *testing.T) {
	ctx := context.Background()
	photo := "https://files.local/photo.png"
	update := &domain.ProjectUpdate{
		Title:              "Solar kiosk",
		Description:        "revised numbers",
		Category:           "ENERGY",
		MonthlyIncomeCents: 250000,
		PhotoURL:           &photo,
	}

	t.Run("DeclinedClearsFeedbackAndResetsToPending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("DECLINED"))
		mock.ExpectExec(`UPDATE projects SET title = \$1`).
			WithArgs("Solar kiosk", "revised numbers", "ENERGY", int32(250000),
				&photo, nil, nil, sqlmock.AnyArg(), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM decline_feedback WHERE project_id = \$1`).
			WithArgs(int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE projects SET status = \$1 WHERE id = \$2`).
			WithArgs(domain.ProjectStatusPending, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Resubmit(ctx, 10, update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PendingUpdatesFieldsOnly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
		mock.ExpectExec(`UPDATE projects SET title = \$1`).
			WithArgs("Solar kiosk", "revised numbers", "ENERGY", int32(250000),
				&photo, nil, nil, sqlmock.AnyArg(), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Resubmit(ctx, 10, update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ApprovedIsForbidden", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewProjectRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("APPROVED"))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Resubmit(ctx, 10, update), domain.ErrForbidden)
	})
}
