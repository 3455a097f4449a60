package domain

import (
	"context"
	"time"
)

// Event represents a published event. Date and Time are stored in canonical
// form only (`YYYY-MM-DD` and `HH:mm` or `HH:mm-HH:mm`), so consumers never
// re-parse variant input formats. Slug is derived from Title and unique
// across all events.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventChanges carries the proposed new values for an update. A nil field
// means "unchanged": the caller computes the diff against the committed
// snapshot, and the lifecycle recomputes slug/date/time only for fields
// that actually changed.
type EventChanges struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Organizer   *string
	Agenda      []string
	Tags        []string
}

// EventRepository defines the interface for event storage. Create and
// Update must enforce the unique index on slug and return ErrSlugConflict
// on violation.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// ExistsBySlug reports whether an event other than excludingID (which
	// may be empty) already holds the slug.
	ExistsBySlug(ctx context.Context, slug, excludingID string) (bool, error)
}

// EventService defines the event lifecycle: normalization, validation and
// commit. All failures are terminal for the attempted transition; nothing
// is retried internally.
type EventService interface {
	// CreateEvent normalizes and validates the event, then commits it. On
	// success the event's ID, Slug, canonical Date/Time and timestamps are
	// filled in.
	CreateEvent(ctx context.Context, event *Event) error
	// UpdateEvent applies the changed fields to the committed record,
	// re-running normalization only for the fields that changed. On any
	// failure the stored record is left unchanged.
	UpdateEvent(ctx context.Context, eventID string, changes EventChanges) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
}
