package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, query, id, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
		UPDATE bookings
		SET event_id = $2, email = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, b.ID, b.EventID, b.Email, b.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, event_id, email, created_at, updated_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.Email, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
