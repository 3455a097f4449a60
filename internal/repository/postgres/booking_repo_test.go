package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO bookings`).
					WithArgs(sqlmock.AnyArg(), "ev-uuid-1", "user@example.com", now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(db)
			booking := &domain.Booking{
				EventID:   "ev-uuid-1",
				Email:     "user@example.com",
				CreatedAt: now,
				UpdatedAt: now,
			}
			err = repo.Create(ctx, booking)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, booking.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE bookings`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewBookingRepository(db)
		err = repo.Update(ctx, &domain.Booking{ID: "bk-uuid-1", EventID: "ev-uuid-1", Email: "user@example.com"})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows returns ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE bookings`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewBookingRepository(db)
		err = repo.Update(ctx, &domain.Booking{ID: "missing", EventID: "ev-uuid-1", Email: "user@example.com"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id`).
			WithArgs("bk-uuid-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
				AddRow("bk-uuid-1", "ev-uuid-1", "user@example.com", now, now))

		repo := NewBookingRepository(db)
		booking, err := repo.GetByID(ctx, "bk-uuid-1")
		require.NoError(t, err)
		assert.Equal(t, "ev-uuid-1", booking.EventID)
		assert.Equal(t, "user@example.com", booking.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewBookingRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE event_id`).
		WithArgs("ev-uuid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "email", "created_at", "updated_at"}).
			AddRow("bk-uuid-2", "ev-uuid-1", "b@example.com", now, now).
			AddRow("bk-uuid-1", "ev-uuid-1", "a@example.com", now, now))

	repo := NewBookingRepository(db)
	bookings, err := repo.ListByEventID(ctx, "ev-uuid-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b@example.com", bookings[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}
