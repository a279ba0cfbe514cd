package services

import (
	"context"
	"fmt"
	"time"

	"kakeibo/internal/core"
)

// DashboardService derives the year-at-a-glance numbers shown on launch.
type DashboardService struct {
	incomes  *IncomeService
	expenses *ExpenseService
	now      func() time.Time
}

func NewDashboardService(incomes *IncomeService, expenses *ExpenseService) *DashboardService {
	return &DashboardService{
		incomes:  incomes,
		expenses: expenses,
		now:      time.Now,
	}
}

// Overview aggregates one year's monthly totals. The average monthly net
// divides by all 12 months for past years and by the months elapsed so
// far otherwise, flooring toward negative infinity.
func (s *DashboardService) Overview(ctx context.Context, year int) (core.YearOverview, error) {
	ov := core.YearOverview{Year: year}

	for m := 1; m <= 12; m++ {
		in, err := s.incomes.MonthlyTotal(ctx, year, m)
		if err != nil {
			return core.YearOverview{}, fmt.Errorf("income for %04d-%02d: %w", year, m, err)
		}
		ex, err := s.expenses.MonthlyTotal(ctx, year, m)
		if err != nil {
			return core.YearOverview{}, fmt.Errorf("expenses for %04d-%02d: %w", year, m, err)
		}
		ov.MonthlyIncome[m-1] = in
		ov.MonthlyExpenses[m-1] = ex
		ov.TotalIncome += in
		ov.TotalExpenses += ex
	}
	ov.Net = ov.TotalIncome - ov.TotalExpenses

	monthsElapsed := 12
	if now := s.now(); year >= now.Year() {
		monthsElapsed = int(now.Month())
	}
	ov.AvgMonthlyNet = floorDiv(ov.Net, int64(monthsElapsed))

	return ov, nil
}

// floorDiv rounds the quotient toward negative infinity, so a deficit
// year averages at least as negative as the exact quotient.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
