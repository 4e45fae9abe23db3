package repository

import (
	"context"
	"testing"

	"kairos/turn-engine/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUpdateStateFromSwapsOnlyPendingRows(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewTicketRepository(db)

	mock.ExpectExec(`UPDATE "tickets"`).
		WithArgs("cancelled", int64(5), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateStateFrom(context.Background(), 5, domain.StatePending, domain.StateCancelled)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStateFromReportsLostRace(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewTicketRepository(db)

	mock.ExpectExec(`UPDATE "tickets"`).
		WithArgs("cancelled", int64(5), "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateStateFrom(context.Background(), 5, domain.StatePending, domain.StateCancelled)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountPending(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewTicketRepository(db)

	mock.ExpectQuery(`SELECT count`).
		WithArgs(int64(1), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPending(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestFindMaxNumberDefaultsToZero(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewTicketRepository(db)

	mock.ExpectQuery(`SELECT COALESCE`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	max, err := repo.FindMaxNumber(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 0, max)
}

func TestFindPendingByClientNotFoundIsNil(t *testing.T) {
	db, mock := setupDB(t)
	repo := NewTicketRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "client_id", "number", "state", "created_at", "called_at"}))

	ticket, err := repo.FindPendingByClient(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Nil(t, ticket)
}
