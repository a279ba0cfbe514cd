package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// EventService handles calendar event writes and lookups.
type EventService struct {
	repo *storage.EventRepository
}

func NewEventService(repo *storage.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// AddEvent validates and stores a new event, returning the stored copy
// with its assigned ID.
func (s *EventService) AddEvent(ctx context.Context, ev core.Event) (core.Event, error) {
	if err := ev.Validate(); err != nil {
		return core.Event{}, fmt.Errorf("validate event: %w", err)
	}
	saved, err := s.repo.Insert(ctx, ev)
	if err != nil {
		return core.Event{}, fmt.Errorf("save event: %w", err)
	}
	return saved, nil
}

// UpdateEvent validates and rewrites an existing event in full.
func (s *EventService) UpdateEvent(ctx context.Context, ev core.Event) error {
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("validate event: %w", err)
	}
	if err := s.repo.Update(ctx, ev); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent removes an event. Absent IDs are a no-op.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetEvent returns the event with the given ID, or nil when absent.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*core.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// EventsForDate lists one day's events, all-day entries first.
func (s *EventService) EventsForDate(ctx context.Context, d core.Date) ([]core.Event, error) {
	return s.repo.GetByDate(ctx, d)
}

func (s *EventService) MonthlyEvents(ctx context.Context, year, month int) ([]core.Event, error) {
	return s.repo.GetByMonth(ctx, year, month)
}

func (s *EventService) YearlyEvents(ctx context.Context, year int) ([]core.Event, error) {
	return s.repo.GetByYear(ctx, year)
}

func (s *EventService) EventsInRange(ctx context.Context, start, end core.Date) ([]core.Event, error) {
	return s.repo.GetByDateRange(ctx, start, end)
}

func (s *EventService) AllEvents(ctx context.Context) ([]core.Event, error) {
	return s.repo.GetAll(ctx)
}
