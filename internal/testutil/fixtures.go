package testutil

import (
	"context"
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// NewExpense returns a valid cash expense with the given date, amount and
// category.
func NewExpense(d core.Date, amount int64, category core.ExpenseCategory) core.Expense {
	return core.Expense{
		Amount:     amount,
		Category:   category,
		Date:       d,
		Method:     core.PayCash,
		Recurrence: core.RecurrenceNone,
	}
}

// NewIncome returns a valid contract income with the given date, amount
// and client.
func NewIncome(d core.Date, amount int64, client string) core.Income {
	return core.Income{
		Amount:  amount,
		Date:    d,
		Client:  client,
		JobType: core.JobContract,
	}
}

// NewEvent returns a valid all-day work event with the given date and
// title.
func NewEvent(d core.Date, title string) core.Event {
	return core.Event{
		Title:      title,
		Date:       d,
		Category:   core.EventWork,
		Recurrence: core.RepeatNone,
	}
}

// InsertExpense stores the expense and returns the stored copy, failing
// the test on error.
func InsertExpense(t *testing.T, repo *storage.ExpenseRepository, e core.Expense) core.Expense {
	t.Helper()

	stored, err := repo.Insert(context.Background(), e)
	if err != nil {
		t.Fatalf("insert expense fixture: %v", err)
	}
	return stored
}

// InsertIncome stores the income and returns the stored copy, failing the
// test on error.
func InsertIncome(t *testing.T, repo *storage.IncomeRepository, in core.Income) core.Income {
	t.Helper()

	stored, err := repo.Insert(context.Background(), in)
	if err != nil {
		t.Fatalf("insert income fixture: %v", err)
	}
	return stored
}

// InsertEvent stores the event and returns the stored copy, failing the
// test on error.
func InsertEvent(t *testing.T, repo *storage.EventRepository, ev core.Event) core.Event {
	t.Helper()

	stored, err := repo.Insert(context.Background(), ev)
	if err != nil {
		t.Fatalf("insert event fixture: %v", err)
	}
	return stored
}
