package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/normalize"
	"eventbooking/internal/validate"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// validateEventFields runs the required-field and array rules on every
// transition and stores the trimmed values back on the staged record.
func validateEventFields(e *domain.Event) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"title", &e.Title},
		{"description", &e.Description},
		{"overview", &e.Overview},
		{"image", &e.Image},
		{"venue", &e.Venue},
		{"location", &e.Location},
		{"mode", &e.Mode},
		{"audience", &e.Audience},
		{"organizer", &e.Organizer},
	}
	for _, f := range fields {
		trimmed, err := validate.RequiredText(f.name, *f.value)
		if err != nil {
			return err
		}
		*f.value = trimmed
	}
	agenda, err := validate.RequiredList("agenda", e.Agenda)
	if err != nil {
		return err
	}
	e.Agenda = agenda
	tags, err := validate.RequiredList("tags", e.Tags)
	if err != nil {
		return err
	}
	e.Tags = tags
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Normalization happens on a staging copy; the caller's record is only
	// touched after the store accepted the write.
	staged := *event
	if err := validateEventFields(&staged); err != nil {
		return err
	}

	staged.Slug = normalize.Slug(staged.Title)
	if staged.Slug == "" {
		return domain.NewFieldError(domain.ErrInvalidSlug, "slug", fmt.Sprintf("title %q yields an empty slug", staged.Title))
	}
	date, err := normalize.Date(staged.Date)
	if err != nil {
		return err
	}
	staged.Date = date
	normalizedTime, err := normalize.Time(staged.Time)
	if err != nil {
		return err
	}
	staged.Time = normalizedTime

	taken, err := s.eventRepo.ExistsBySlug(ctx, staged.Slug, "")
	if err != nil {
		return fmt.Errorf("check slug uniqueness: %w", err)
	}
	if taken {
		return domain.NewFieldError(domain.ErrSlugConflict, "slug", fmt.Sprintf("slug %q is already in use", staged.Slug))
	}

	now := time.Now()
	staged.CreatedAt = now
	staged.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, &staged); err != nil {
		// The store's unique index is the source of truth for races; a
		// violation raised only at commit time still surfaces as a conflict.
		if errors.Is(err, domain.ErrSlugConflict) {
			return domain.NewFieldError(domain.ErrSlugConflict, "slug", fmt.Sprintf("slug %q is already in use", staged.Slug))
		}
		return fmt.Errorf("create event: %w", err)
	}
	*event = staged
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	staged := *current
	staged.Agenda = append([]string(nil), current.Agenda...)
	staged.Tags = append([]string(nil), current.Tags...)

	titleChanged := changes.Title != nil && *changes.Title != current.Title
	dateChanged := changes.Date != nil && *changes.Date != current.Date
	timeChanged := changes.Time != nil && *changes.Time != current.Time

	if changes.Title != nil {
		staged.Title = *changes.Title
	}
	if changes.Description != nil {
		staged.Description = *changes.Description
	}
	if changes.Overview != nil {
		staged.Overview = *changes.Overview
	}
	if changes.Image != nil {
		staged.Image = *changes.Image
	}
	if changes.Venue != nil {
		staged.Venue = *changes.Venue
	}
	if changes.Location != nil {
		staged.Location = *changes.Location
	}
	if changes.Date != nil {
		staged.Date = *changes.Date
	}
	if changes.Time != nil {
		staged.Time = *changes.Time
	}
	if changes.Mode != nil {
		staged.Mode = *changes.Mode
	}
	if changes.Audience != nil {
		staged.Audience = *changes.Audience
	}
	if changes.Organizer != nil {
		staged.Organizer = *changes.Organizer
	}
	if changes.Agenda != nil {
		staged.Agenda = changes.Agenda
	}
	if changes.Tags != nil {
		staged.Tags = changes.Tags
	}

	if err := validateEventFields(&staged); err != nil {
		return nil, err
	}

	if titleChanged {
		staged.Slug = normalize.Slug(staged.Title)
		if staged.Slug == "" {
			return nil, domain.NewFieldError(domain.ErrInvalidSlug, "slug", fmt.Sprintf("title %q yields an empty slug", staged.Title))
		}
		taken, err := s.eventRepo.ExistsBySlug(ctx, staged.Slug, staged.ID)
		if err != nil {
			return nil, fmt.Errorf("check slug uniqueness: %w", err)
		}
		if taken {
			return nil, domain.NewFieldError(domain.ErrSlugConflict, "slug", fmt.Sprintf("slug %q is already in use", staged.Slug))
		}
	}
	if dateChanged {
		date, err := normalize.Date(staged.Date)
		if err != nil {
			return nil, err
		}
		staged.Date = date
	}
	if timeChanged {
		normalizedTime, err := normalize.Time(staged.Time)
		if err != nil {
			return nil, err
		}
		staged.Time = normalizedTime
	}

	staged.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, &staged); err != nil {
		if errors.Is(err, domain.ErrSlugConflict) {
			return nil, domain.NewFieldError(domain.ErrSlugConflict, "slug", fmt.Sprintf("slug %q is already in use", staged.Slug))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &staged, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}
