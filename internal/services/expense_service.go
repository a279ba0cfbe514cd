// Package services layers validation and aggregation over the storage
// repositories. Records are validated before any write, so an invalid
// record never reaches SQLite.
package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// ExpenseService handles expense writes and the expense-side totals used
// by the dashboard and the tax summary.
type ExpenseService struct {
	repo *storage.ExpenseRepository
}

func NewExpenseService(repo *storage.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// AddExpense validates and stores a new expense, returning the stored
// copy with its assigned ID.
func (s *ExpenseService) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("validate expense: %w", err)
	}
	saved, err := s.repo.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}
	return saved, nil
}

// UpdateExpense validates and rewrites an existing expense in full.
func (s *ExpenseService) UpdateExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validate expense: %w", err)
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense. Absent IDs are a no-op.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// GetExpense returns the expense with the given ID, or nil when absent.
func (s *ExpenseService) GetExpense(ctx context.Context, id int64) (*core.Expense, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ExpenseService) ExpensesForDate(ctx context.Context, d core.Date) ([]core.Expense, error) {
	return s.repo.GetByDate(ctx, d)
}

func (s *ExpenseService) MonthlyExpenses(ctx context.Context, year, month int) ([]core.Expense, error) {
	return s.repo.GetByMonth(ctx, year, month)
}

func (s *ExpenseService) YearlyExpenses(ctx context.Context, year int) ([]core.Expense, error) {
	return s.repo.GetByYear(ctx, year)
}

func (s *ExpenseService) ExpensesInRange(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	return s.repo.GetByDateRange(ctx, start, end)
}

func (s *ExpenseService) AllExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.repo.GetAll(ctx)
}

// MonthlyTotal sums the month's expense amounts. Months with no records
// total zero.
func (s *ExpenseService) MonthlyTotal(ctx context.Context, year, month int) (int64, error) {
	expenses, err := s.repo.GetByMonth(ctx, year, month)
	if err != nil {
		return 0, fmt.Errorf("monthly expenses: %w", err)
	}
	return sumExpenses(expenses), nil
}

// YearlyTotal sums the year's expense amounts.
func (s *ExpenseService) YearlyTotal(ctx context.Context, year int) (int64, error) {
	expenses, err := s.repo.GetByYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("yearly expenses: %w", err)
	}
	return sumExpenses(expenses), nil
}

// CategoryTotals sums the year's expenses per category. Categories with
// no records that year do not appear in the map, not even as zero.
func (s *ExpenseService) CategoryTotals(ctx context.Context, year int) (map[core.ExpenseCategory]int64, error) {
	expenses, err := s.repo.GetByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("yearly expenses: %w", err)
	}
	totals := make(map[core.ExpenseCategory]int64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals, nil
}

func sumExpenses(expenses []core.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
