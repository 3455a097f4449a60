package domain

import (
	"context"
	"time"
)

// Booking represents a spot reserved for an event. Email is trimmed and
// lower-cased before storage. EventID is a non-owning reference to an
// existing Event; referential integrity is enforced at write time.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingChanges carries the proposed new values for an update; nil means
// "unchanged". The event-existence check runs only when EventID changed.
type BookingChanges struct {
	EventID *string
	Email   *string
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	Update(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines the booking lifecycle. Creating or repointing a
// booking verifies that the referenced event exists before committing.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	UpdateBooking(ctx context.Context, bookingID string, changes BookingChanges) (*Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}
