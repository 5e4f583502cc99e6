package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad-backend/internal/domain"
)

func TestAnalyticsRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("SecondRecordConflicts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewAnalyticsRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM projects WHERE id = \$1 FOR UPDATE`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err = repo.Create(ctx, &domain.AnalyticsRecord{ProjectID: 10})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("EnabledRecordLocked", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewAnalyticsRepository(db)

		mock.ExpectExec(`UPDATE analytics_records`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT enabled FROM analytics_records WHERE project_id = \$1`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(true))

		err = repo.Update(ctx, &domain.AnalyticsRecord{ProjectID: 10})
		assert.ErrorIs(t, err, domain.ErrLocked)
	})

	t.Run("MissingRecordNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewAnalyticsRepository(db)

		mock.ExpectExec(`UPDATE analytics_records`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT enabled FROM analytics_records WHERE project_id = \$1`).
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"enabled"}))

		err = repo.Update(ctx, &domain.AnalyticsRecord{ProjectID: 10})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAnalyticsRepository_DeleteByProject(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewAnalyticsRepository(db)

	mock.ExpectExec(`DELETE FROM analytics_records WHERE project_id = \$1`).
		WithArgs(int32(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM analytics_records WHERE project_id = \$1`).
		WithArgs(int32(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByProject(ctx, 10))
	assert.NoError(t, repo.DeleteByProject(ctx, 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}
