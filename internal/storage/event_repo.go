package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

const eventColumns = "id, title, event_date, category, start_time, end_time, recurrence, color, notes, linked_income_id, linked_expense_id"

// EventRepository maps calendar events to rows of the events table. All
// list results come back in ascending date order, then by start time;
// all-day events (NULL start_time) sort before timed ones on the same day.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert stores the event and returns a copy carrying the assigned id.
// Any id already set on the record is ignored; the store always assigns a
// fresh one.
func (r *EventRepository) Insert(ctx context.Context, ev core.Event) (core.Event, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events
		 (title, event_date, category, start_time, end_time, recurrence, color, notes, linked_income_id, linked_expense_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Title, ev.Date.ISO(), string(ev.Category), timeParam(ev.Start), timeParam(ev.End),
		string(ev.Recurrence), ev.Color, ev.Notes, ev.LinkedIncomeID, ev.LinkedExpenseID)
	if err != nil {
		return core.Event{}, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Event{}, fmt.Errorf("event insert id: %w", err)
	}
	ev.ID = id

	slog.InfoContext(ctx, "Event saved",
		log.FieldID, ev.ID,
		log.FieldTitle, ev.Title,
		log.FieldCategory, string(ev.Category),
		log.FieldDate, ev.Date.ISO())

	return ev, nil
}

// Update replaces all mutable fields of the stored row. Updating an id
// that no longer exists is a silent no-op.
func (r *EventRepository) Update(ctx context.Context, ev core.Event) error {
	if ev.ID == 0 {
		return ErrMissingID
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE events
		 SET title = ?, event_date = ?, category = ?, start_time = ?, end_time = ?,
		     recurrence = ?, color = ?, notes = ?, linked_income_id = ?, linked_expense_id = ?
		 WHERE id = ?`,
		ev.Title, ev.Date.ISO(), string(ev.Category), timeParam(ev.Start), timeParam(ev.End),
		string(ev.Recurrence), ev.Color, ev.Notes, ev.LinkedIncomeID, ev.LinkedExpenseID, ev.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	slog.InfoContext(ctx, "Event updated", log.FieldID, ev.ID)
	return nil
}

// Delete removes the row; deleting an absent id is a no-op.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	slog.InfoContext(ctx, "Event deleted", log.FieldID, id)
	return nil
}

// GetByID returns the event, or nil without error when the id is absent.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*core.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)

	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &ev, nil
}

func (r *EventRepository) GetByDate(ctx context.Context, d core.Date) ([]core.Event, error) {
	out, err := r.query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_date = ? ORDER BY start_time`,
		d.ISO())
	if err != nil {
		return nil, fmt.Errorf("get events by date: %w", err)
	}
	return out, nil
}

func (r *EventRepository) GetByMonth(ctx context.Context, year, month int) ([]core.Event, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	out, err := r.query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_date LIKE ? ORDER BY event_date, start_time`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get events by month: %w", err)
	}
	return out, nil
}

func (r *EventRepository) GetByYear(ctx context.Context, year int) ([]core.Event, error) {
	prefix := fmt.Sprintf("%04d", year)
	out, err := r.query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_date LIKE ? ORDER BY event_date, start_time`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get events by year: %w", err)
	}
	return out, nil
}

// GetByDateRange returns events with start <= date <= end.
func (r *EventRepository) GetByDateRange(ctx context.Context, start, end core.Date) ([]core.Event, error) {
	out, err := r.query(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE event_date >= ? AND event_date <= ?
		 ORDER BY event_date, start_time`,
		start.ISO(), end.ISO())
	if err != nil {
		return nil, fmt.Errorf("get events by date range: %w", err)
	}
	return out, nil
}

func (r *EventRepository) GetAll(ctx context.Context) ([]core.Event, error) {
	out, err := r.query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY event_date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("get all events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) query(ctx context.Context, query string, args ...any) ([]core.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// timeParam converts an optional time to its bind value, NULL when unset.
func timeParam(t *core.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.String()
}

func scanEvent(row rowScanner) (core.Event, error) {
	var (
		ev                  core.Event
		day, category, rec  string
		start, end, color   sql.NullString
		incomeID, expenseID sql.NullInt64
	)
	if err := row.Scan(&ev.ID, &ev.Title, &day, &category, &start, &end, &rec, &color, &ev.Notes, &incomeID, &expenseID); err != nil {
		return core.Event{}, err
	}

	d, err := core.ParseDate(day)
	if err != nil {
		return core.Event{}, err
	}
	ev.Date = d
	ev.Category = core.EventCategory(category)
	ev.Recurrence = core.EventRecurrence(rec)

	if start.Valid {
		t, err := core.ParseTimeOfDay(start.String)
		if err != nil {
			return core.Event{}, err
		}
		ev.Start = &t
	}
	if end.Valid {
		t, err := core.ParseTimeOfDay(end.String)
		if err != nil {
			return core.Event{}, err
		}
		ev.End = &t
	}
	if color.Valid {
		ev.Color = &color.String
	}
	if incomeID.Valid {
		ev.LinkedIncomeID = &incomeID.Int64
	}
	if expenseID.Valid {
		ev.LinkedExpenseID = &expenseID.Int64
	}

	return ev, nil
}
