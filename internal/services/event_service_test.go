package services

import (
	"context"
	"errors"
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/testutil"
)

func TestAddEventRoundTrip(t *testing.T) {
	_, _, events := newTestServices(t)
	ctx := context.Background()

	ev := testutil.NewEvent(core.NewDate(2025, 5, 12), "Invoice deadline")
	ev.Category = core.EventDeadline
	start := core.TimeOfDay{Hour: 10, Minute: 0}
	ev.Start = &start

	saved, err := events.AddEvent(ctx, ev)
	if err != nil {
		t.Fatalf("add event: %v", err)
	}

	got, err := events.GetEvent(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.Title != "Invoice deadline" || got.Category != core.EventDeadline {
		t.Fatalf("stored event mismatch: %+v", got)
	}
	if got.Start == nil || got.Start.String() != "10:00" {
		t.Fatalf("stored start mismatch: %+v", got.Start)
	}
}

func TestAddEventRejectsEndBeforeStart(t *testing.T) {
	_, _, events := newTestServices(t)
	ctx := context.Background()

	ev := testutil.NewEvent(core.NewDate(2025, 5, 12), "Backwards meeting")
	start := core.TimeOfDay{Hour: 14, Minute: 0}
	end := core.TimeOfDay{Hour: 10, Minute: 0}
	ev.Start = &start
	ev.End = &end

	if _, err := events.AddEvent(ctx, ev); !errors.Is(err, core.ErrEndBeforeStart) {
		t.Fatalf("want ErrEndBeforeStart, got %v", err)
	}

	all, err := events.AllEvents(ctx)
	if err != nil {
		t.Fatalf("all events: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rejected event must not be stored, found %d rows", len(all))
	}
}

func TestEventsForDate(t *testing.T) {
	_, _, events := newTestServices(t)
	ctx := context.Background()

	morning := testutil.NewEvent(core.NewDate(2025, 5, 12), "Standup")
	st := core.TimeOfDay{Hour: 9, Minute: 30}
	morning.Start = &st

	fixtures := []core.Event{
		testutil.NewEvent(core.NewDate(2025, 5, 12), "Public holiday"),
		morning,
		testutil.NewEvent(core.NewDate(2025, 5, 13), "Next day"),
	}
	for i, ev := range fixtures {
		if _, err := events.AddEvent(ctx, ev); err != nil {
			t.Fatalf("case %d: add event: %v", i, err)
		}
	}

	day, err := events.EventsForDate(ctx, core.NewDate(2025, 5, 12))
	if err != nil {
		t.Fatalf("events for date: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("got %d events, want 2", len(day))
	}
	if day[0].Title != "Public holiday" || day[1].Title != "Standup" {
		t.Fatalf("all-day events sort first, got %q then %q", day[0].Title, day[1].Title)
	}
}
