package storage_test

import (
	"context"
	"errors"
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
	"kakeibo/internal/testutil"
)

func expenseRepo(t *testing.T) *storage.ExpenseRepository {
	t.Helper()
	return storage.NewExpenseRepository(testutil.OpenTestStore(t).DB())
}

func TestExpenseInsertRoundTrip(t *testing.T) {
	repo := expenseRepo(t)
	ctx := context.Background()

	e := core.Expense{
		Amount:     4500,
		Category:   core.CategoryGroceries,
		Date:       core.NewDate(2025, 3, 10),
		Method:     core.PayCreditCard,
		Recurrence: core.RecurrenceMonthly,
		Notes:      "weekly shop",
	}

	stored, err := repo.Insert(ctx, e)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("insert should assign an id")
	}

	got, err := repo.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil {
		t.Fatal("expected a row")
	}
	if got.Amount != 4500 || got.Category != core.CategoryGroceries || got.Date.ISO() != "2025-03-10" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Method != core.PayCreditCard || got.Recurrence != core.RecurrenceMonthly || got.Notes != "weekly shop" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestExpenseInsertIgnoresPresetID(t *testing.T) {
	repo := expenseRepo(t)
	ctx := context.Background()

	e := testutil.NewExpense(core.NewDate(2025, 1, 1), 100, core.CategoryOther)
	e.ID = 99

	stored, err := repo.Insert(ctx, e)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if stored.ID != 1 {
		t.Fatalf("expected the store-assigned id 1, got %d", stored.ID)
	}
	if got, err := repo.GetByID(ctx, 99); err != nil || got != nil {
		t.Fatalf("id 99 should not exist, got %v, %v", got, err)
	}
}

func TestExpenseGetByIDAbsent(t *testing.T) {
	repo := expenseRepo(t)

	got, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("absent id should not error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestExpenseUpdate(t *testing.T) {
	repo := expenseRepo(t)
	ctx := context.Background()

	stored := testutil.InsertExpense(t, repo,
		testutil.NewExpense(core.NewDate(2025, 2, 1), 800, core.CategoryDining))

	stored.Amount = 1200
	stored.Category = core.CategoryEntertainment
	stored.Notes = "changed"
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Amount != 1200 || got.Category != core.CategoryEntertainment || got.Notes != "changed" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestExpenseUpdateWithoutID(t *testing.T) {
	repo := expenseRepo(t)

	e := testutil.NewExpense(core.NewDate(2025, 2, 1), 800, core.CategoryDining)
	if err := repo.Update(context.Background(), e); !errors.Is(err, storage.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestExpenseUpdateAbsentRow(t *testing.T) {
	repo := expenseRepo(t)

	e := testutil.NewExpense(core.NewDate(2025, 2, 1), 800, core.CategoryDining)
	e.ID = 4242
	if err := repo.Update(context.Background(), e); err != nil {
		t.Fatalf("updating an absent row should be a no-op, got %v", err)
	}
}

func TestExpenseDelete(t *testing.T) {
	repo := expenseRepo(t)
	ctx := context.Background()

	stored := testutil.InsertExpense(t, repo,
		testutil.NewExpense(core.NewDate(2025, 2, 1), 800, core.CategoryDining))

	if err := repo.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, err := repo.GetByID(ctx, stored.ID); err != nil || got != nil {
		t.Fatalf("row should be gone, got %v, %v", got, err)
	}

	// Absent ids are a no-op.
	if err := repo.Delete(ctx, 9999); err != nil {
		t.Fatalf("deleting an absent id should be a no-op, got %v", err)
	}
}

func TestExpenseGetByDate(t *testing.T) {
	repo := expenseRepo(t)
	d := core.NewDate(2025, 4, 5)

	testutil.InsertExpense(t, repo, testutil.NewExpense(d, 100, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(d, 200, core.CategoryDining))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 4, 6), 300, core.CategoryOther))

	got, err := repo.GetByDate(context.Background(), d)
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
}

func TestExpenseGetByMonthPadsPrefix(t *testing.T) {
	repo := expenseRepo(t)
	ctx := context.Background()

	jan := testutil.InsertExpense(t, repo,
		testutil.NewExpense(core.NewDate(2025, 1, 15), 100, core.CategoryGroceries))
	testutil.InsertExpense(t, repo,
		testutil.NewExpense(core.NewDate(2025, 11, 3), 200, core.CategoryGroceries))
	testutil.InsertExpense(t, repo,
		testutil.NewExpense(core.NewDate(2024, 1, 20), 300, core.CategoryGroceries))

	// January must not pick up November rows through an unpadded prefix.
	got, err := repo.GetByMonth(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("get by month: %v", err)
	}
	if len(got) != 1 || got[0].ID != jan.ID {
		t.Fatalf("expected only the January 2025 row, got %+v", got)
	}

	got, err = repo.GetByMonth(ctx, 2025, 11)
	if err != nil {
		t.Fatalf("get by month: %v", err)
	}
	if len(got) != 1 || got[0].Date.ISO() != "2025-11-03" {
		t.Fatalf("expected only the November row, got %+v", got)
	}
}

func TestExpenseGetByYear(t *testing.T) {
	repo := expenseRepo(t)

	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 1, 15), 100, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 12, 31), 200, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2024, 6, 1), 300, core.CategoryGroceries))

	got, err := repo.GetByYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("get by year: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
}

func TestExpenseGetByDateRangeInclusive(t *testing.T) {
	repo := expenseRepo(t)

	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 5, 1), 100, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 5, 10), 200, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 5, 20), 300, core.CategoryGroceries))

	got, err := repo.GetByDateRange(context.Background(), core.NewDate(2025, 5, 1), core.NewDate(2025, 5, 10))
	if err != nil {
		t.Fatalf("get by range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("both endpoints should be included, got %d rows", len(got))
	}
	if got[0].Date.ISO() != "2025-05-10" || got[1].Date.ISO() != "2025-05-01" {
		t.Fatalf("expected most recent first, got %+v", got)
	}
}

func TestExpenseListsAreMostRecentFirst(t *testing.T) {
	repo := expenseRepo(t)

	// Inserted out of order.
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 1, 5), 100, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 3, 1), 200, core.CategoryGroceries))
	testutil.InsertExpense(t, repo, testutil.NewExpense(core.NewDate(2025, 2, 14), 300, core.CategoryGroceries))

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []string{"2025-03-01", "2025-02-14", "2025-01-05"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Date.ISO() != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, got[i].Date.ISO())
		}
	}
}

func TestExpenseSchemaRejectsNegativeAmount(t *testing.T) {
	repo := expenseRepo(t)

	e := testutil.NewExpense(core.NewDate(2025, 1, 1), 100, core.CategoryOther)
	e.Amount = -1
	if _, err := repo.Insert(context.Background(), e); err == nil {
		t.Fatal("the amount check constraint should reject negative amounts")
	}
}
