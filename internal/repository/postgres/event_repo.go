package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eventbooking/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// uniqueViolation is the postgres error code for a unique-index violation.
const uniqueViolation = "23505"

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, slug, description, overview, image, venue, location, date, time, mode, audience, organizer, agenda, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, query,
		id, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, e.Mode, e.Audience, e.Organizer,
		pq.Array(e.Agenda), pq.Array(e.Tags), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrSlugConflict
		}
		return err
	}
	e.ID = id
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, slug = $3, description = $4, overview = $5, image = $6, venue = $7, location = $8,
		    date = $9, time = $10, mode = $11, audience = $12, organizer = $13, agenda = $14, tags = $15, updated_at = $16
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location,
		e.Date, e.Time, e.Mode, e.Audience, e.Organizer,
		pq.Array(e.Agenda), pq.Array(e.Tags), e.UpdatedAt,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrSlugConflict
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, time, mode, audience, organizer, agenda, tags, created_at, updated_at`

func (r *eventRepository) scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	var agenda, tags pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &e.Mode, &e.Audience, &e.Organizer,
		&agenda, &tags, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Agenda = []string(agenda)
	e.Tags = []string(tags)
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, slug))
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) ExistsBySlug(ctx context.Context, slug, excludingID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1 AND ($2 = '' OR id <> $2))`,
		slug, excludingID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
