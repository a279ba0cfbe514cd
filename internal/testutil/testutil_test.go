package testutil_test

import (
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
	"kakeibo/internal/testutil"
)

func TestOpenTestStore(t *testing.T) {
	st := testutil.OpenTestStore(t)

	// Every table should exist after migrations.
	for _, table := range []string{"expenses", "incomes", "events", "settings"} {
		var count int64
		if err := st.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	st := testutil.OpenTestStore(t)
	d := core.NewDate(2025, 6, 1)

	e := testutil.InsertExpense(t, storage.NewExpenseRepository(st.DB()),
		testutil.NewExpense(d, 3200, core.CategoryDining))
	if e.ID == 0 {
		t.Fatal("expense should have a non-zero id")
	}

	in := testutil.InsertIncome(t, storage.NewIncomeRepository(st.DB()),
		testutil.NewIncome(d, 90000, "Acme"))
	if in.ID == 0 {
		t.Fatal("income should have a non-zero id")
	}

	ev := testutil.InsertEvent(t, storage.NewEventRepository(st.DB()),
		testutil.NewEvent(d, "Kickoff"))
	if ev.ID == 0 {
		t.Fatal("event should have a non-zero id")
	}
}
