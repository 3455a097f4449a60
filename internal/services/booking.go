package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/validate"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. emailService may be nil to
// disable confirmation emails.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staged := *booking
	email, err := validate.Email("email", staged.Email)
	if err != nil {
		return err
	}
	staged.Email = email

	eventID, err := validate.RequiredText("event_id", staged.EventID)
	if err != nil {
		return err
	}
	staged.EventID = eventID

	// Referential integrity is checked synchronously, immediately before
	// the commit; a miss means nothing is persisted.
	exists, err := s.eventRepo.ExistsByID(ctx, staged.EventID)
	if err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return domain.NewFieldError(domain.ErrDanglingReference, "event_id", "referenced event does not exist")
	}

	now := time.Now()
	staged.CreatedAt = now
	staged.UpdatedAt = now
	if err := s.bookingRepo.Create(ctx, &staged); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	*booking = staged

	s.sendConfirmation(ctx, &staged)
	return nil
}

// sendConfirmation emails the booked address after a successful commit.
// Failures are logged, never surfaced: the booking is already committed.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		slog.Error("booking confirmation: load event", "booking_id", booking.ID, "event_id", booking.EventID, "error", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		slog.Error("booking confirmation: send", "booking_id", booking.ID, "email", booking.Email, "error", err)
	}
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, changes domain.BookingChanges) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	staged := *current
	if changes.Email != nil {
		staged.Email = *changes.Email
	}
	// Email is validated and normalized on every transition.
	email, err := validate.Email("email", staged.Email)
	if err != nil {
		return nil, err
	}
	staged.Email = email

	eventChanged := changes.EventID != nil && *changes.EventID != current.EventID
	if changes.EventID != nil {
		staged.EventID = *changes.EventID
	}
	if eventChanged {
		eventID, err := validate.RequiredText("event_id", staged.EventID)
		if err != nil {
			return nil, err
		}
		staged.EventID = eventID
		exists, err := s.eventRepo.ExistsByID(ctx, staged.EventID)
		if err != nil {
			return nil, fmt.Errorf("check event exists: %w", err)
		}
		if !exists {
			return nil, domain.NewFieldError(domain.ErrDanglingReference, "event_id", "referenced event does not exist")
		}
	}

	staged.UpdatedAt = time.Now()
	if err := s.bookingRepo.Update(ctx, &staged); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &staged, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}
