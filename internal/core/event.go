package core

import (
	"errors"
	"strings"
)

// EventCategory classifies a calendar event.
type EventCategory string

const (
	EventWork        EventCategory = "work"
	EventFamily      EventCategory = "family"
	EventBirthday    EventCategory = "birthday"
	EventDeadline    EventCategory = "deadline"
	EventAppointment EventCategory = "appointment"
	EventHoliday     EventCategory = "holiday"
	EventOther       EventCategory = "other"
)

// EventCategoryColors maps each category to its default hex color.
var EventCategoryColors = map[EventCategory]string{
	EventWork:        "#4A90D9",
	EventFamily:      "#7B68EE",
	EventBirthday:    "#E91E63",
	EventDeadline:    "#F44336",
	EventAppointment: "#FF9800",
	EventHoliday:     "#4CAF50",
	EventOther:       "#9E9E9E",
}

// EventRecurrence marks an event as repeating. The tag is informational;
// no rows are generated from it.
type EventRecurrence string

const (
	RepeatNone    EventRecurrence = "none"
	RepeatWeekly  EventRecurrence = "weekly"
	RepeatMonthly EventRecurrence = "monthly"
	RepeatYearly  EventRecurrence = "yearly"
)

var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrEndBeforeStart = errors.New("end time before start time")
)

// Event is a calendar entry. Start and End are optional; an event with
// neither is all-day. Linked IDs reference ledger rows and are nulled by
// the store when the referenced row is deleted.
type Event struct {
	ID              int64 // 0 until stored
	Title           string
	Date            Date
	Category        EventCategory
	Start           *TimeOfDay
	End             *TimeOfDay
	Recurrence      EventRecurrence
	Color           *string // overrides the category default
	Notes           string
	LinkedIncomeID  *int64
	LinkedExpenseID *int64
}

func (ev Event) Validate() error {
	if strings.TrimSpace(ev.Title) == "" {
		return ErrEmptyTitle
	}
	if err := ev.Date.Validate(); err != nil {
		return err
	}
	if !ev.Category.Valid() {
		return ErrUnknownCategory
	}
	if ev.Start != nil {
		if err := ev.Start.Validate(); err != nil {
			return err
		}
	}
	if ev.End != nil {
		if err := ev.End.Validate(); err != nil {
			return err
		}
	}
	if ev.Start != nil && ev.End != nil && ev.End.Before(*ev.Start) {
		return ErrEndBeforeStart
	}
	if !ev.Recurrence.Valid() {
		return ErrUnknownRecurrence
	}
	return nil
}

// DisplayColor returns the override color when set, otherwise the category
// default.
func (ev Event) DisplayColor() string {
	if ev.Color != nil && *ev.Color != "" {
		return *ev.Color
	}
	return EventCategoryColors[ev.Category]
}

var eventCategoryLabels = map[EventCategory]string{
	EventWork:        "Work",
	EventFamily:      "Family",
	EventBirthday:    "Birthday",
	EventDeadline:    "Deadline",
	EventAppointment: "Appointment",
	EventHoliday:     "Holiday",
	EventOther:       "Other",
}

// Label returns the display label, e.g. "Appointment".
func (c EventCategory) Label() string {
	if l, ok := eventCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c EventCategory) Valid() bool {
	_, ok := eventCategoryLabels[c]
	return ok
}

var eventRecurrenceLabels = map[EventRecurrence]string{
	RepeatNone:    "None",
	RepeatWeekly:  "Weekly",
	RepeatMonthly: "Monthly",
	RepeatYearly:  "Yearly",
}

// Label returns the display label, e.g. "Weekly".
func (r EventRecurrence) Label() string {
	if l, ok := eventRecurrenceLabels[r]; ok {
		return l
	}
	return string(r)
}

func (r EventRecurrence) Valid() bool {
	_, ok := eventRecurrenceLabels[r]
	return ok
}
