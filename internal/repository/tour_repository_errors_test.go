package repository

// Storage-failure paths are exercised with sqlmock: a real SQLite file is
// awkward to break on demand, while the not-found paths are covered against
// the real engine in tour_repository_test.go.

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/tour-catalog/internal/model"
)

var errDiskGone = errors.New("disk I/O error")

func TestGetByIDStorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, description, price, cover, created_at FROM tours").
		WithArgs(int64(5)).
		WillReturnError(errDiskGone)

	_, err = NewTourRepo(db).GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, errDiskGone)
	// An engine failure must not masquerade as a missing row.
	assert.NotErrorIs(t, err, ErrTourNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO tours").
		WillReturnError(errDiskGone)

	_, err = NewTourRepo(db).Create(context.Background(), model.NewTour{
		TourPrice: model.TourPrice{Price: 10},
		Title:     "Rome",
		Cover:     "https://example.com/rome.jpg",
	})
	assert.ErrorIs(t, err, errDiskGone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, description, price, cover, created_at").
		WillReturnError(errDiskGone)

	_, err = NewTourRepo(db).List(context.Background(), 10, "")
	assert.ErrorIs(t, err, errDiskGone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePriceFailsAfterExistenceCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "price", "cover", "created_at"}).
		AddRow(3, "Rome", "ruins", 450.0, "https://example.com/rome.jpg", "2026-01-02 03:04:05")
	mock.ExpectQuery("SELECT id, title, description, price, cover, created_at FROM tours").
		WithArgs(int64(3)).
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE tours SET price").
		WithArgs(99.0, int64(3)).
		WillReturnError(errDiskGone)

	_, err = NewTourRepo(db).UpdatePrice(context.Background(), 3, 99)
	assert.ErrorIs(t, err, errDiskGone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
