// Package testutil provides test helpers for opening in-memory stores and
// building ledger fixtures.
package testutil

import (
	"testing"

	"kakeibo/internal/storage"
)

// OpenTestStore opens an in-memory store with all migrations applied. The
// store is closed when the test finishes.
func OpenTestStore(t *testing.T) *storage.Store {
	t.Helper()

	st, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close test store: %v", err)
		}
	})
	return st
}
