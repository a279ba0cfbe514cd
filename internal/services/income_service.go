package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

// IncomeService handles income writes and the income-side totals.
type IncomeService struct {
	repo *storage.IncomeRepository
}

func NewIncomeService(repo *storage.IncomeRepository) *IncomeService {
	return &IncomeService{repo: repo}
}

// AddIncome validates and stores a new income entry, returning the
// stored copy with its assigned ID.
func (s *IncomeService) AddIncome(ctx context.Context, in core.Income) (core.Income, error) {
	if err := in.Validate(); err != nil {
		return core.Income{}, fmt.Errorf("validate income: %w", err)
	}
	saved, err := s.repo.Insert(ctx, in)
	if err != nil {
		return core.Income{}, fmt.Errorf("save income: %w", err)
	}
	return saved, nil
}

// UpdateIncome validates and rewrites an existing income entry in full.
func (s *IncomeService) UpdateIncome(ctx context.Context, in core.Income) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("validate income: %w", err)
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return fmt.Errorf("update income: %w", err)
	}
	return nil
}

// DeleteIncome removes an income entry. Absent IDs are a no-op.
func (s *IncomeService) DeleteIncome(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return nil
}

// GetIncome returns the income entry with the given ID, or nil when
// absent.
func (s *IncomeService) GetIncome(ctx context.Context, id int64) (*core.Income, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *IncomeService) IncomesForDate(ctx context.Context, d core.Date) ([]core.Income, error) {
	return s.repo.GetByDate(ctx, d)
}

func (s *IncomeService) MonthlyIncomes(ctx context.Context, year, month int) ([]core.Income, error) {
	return s.repo.GetByMonth(ctx, year, month)
}

func (s *IncomeService) YearlyIncomes(ctx context.Context, year int) ([]core.Income, error) {
	return s.repo.GetByYear(ctx, year)
}

func (s *IncomeService) IncomesInRange(ctx context.Context, start, end core.Date) ([]core.Income, error) {
	return s.repo.GetByDateRange(ctx, start, end)
}

func (s *IncomeService) AllIncomes(ctx context.Context) ([]core.Income, error) {
	return s.repo.GetAll(ctx)
}

// DistinctClients lists every client name seen so far, alphabetically.
func (s *IncomeService) DistinctClients(ctx context.Context) ([]string, error) {
	return s.repo.DistinctClients(ctx)
}

// MonthlyTotal sums the month's income amounts. Months with no records
// total zero.
func (s *IncomeService) MonthlyTotal(ctx context.Context, year, month int) (int64, error) {
	incomes, err := s.repo.GetByMonth(ctx, year, month)
	if err != nil {
		return 0, fmt.Errorf("monthly incomes: %w", err)
	}
	return sumIncomes(incomes), nil
}

// YearlyTotal sums the year's income amounts.
func (s *IncomeService) YearlyTotal(ctx context.Context, year int) (int64, error) {
	incomes, err := s.repo.GetByYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("yearly incomes: %w", err)
	}
	return sumIncomes(incomes), nil
}

func sumIncomes(incomes []core.Income) int64 {
	var total int64
	for _, in := range incomes {
		total += in.Amount
	}
	return total
}
