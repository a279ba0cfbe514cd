package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kakeibo/internal/core"
)

// TaxService assembles the yearly filing summary from both sides of the
// ledger. Summaries are recomputed from scratch on every call.
type TaxService struct {
	incomes  *IncomeService
	expenses *ExpenseService
}

func NewTaxService(incomes *IncomeService, expenses *ExpenseService) *TaxService {
	return &TaxService{incomes: incomes, expenses: expenses}
}

// Summary builds the tax summary for one reporting year. The expense
// breakdown holds only categories with records that year, sorted by
// descending total; equal totals keep category declaration order.
func (s *TaxService) Summary(ctx context.Context, year int) (core.TaxSummary, error) {
	gross, err := s.incomes.YearlyTotal(ctx, year)
	if err != nil {
		return core.TaxSummary{}, fmt.Errorf("gross income: %w", err)
	}
	total, err := s.expenses.YearlyTotal(ctx, year)
	if err != nil {
		return core.TaxSummary{}, fmt.Errorf("total expenses: %w", err)
	}
	byCategory, err := s.expenses.CategoryTotals(ctx, year)
	if err != nil {
		return core.TaxSummary{}, fmt.Errorf("category totals: %w", err)
	}

	var breakdown []core.CategoryBreakdown
	for _, cat := range core.ExpenseCategories() {
		amount, ok := byCategory[cat]
		if !ok {
			continue
		}
		breakdown = append(breakdown, core.CategoryBreakdown{
			Category: cat,
			Label:    taxLabel(cat),
			Total:    amount,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return core.TaxSummary{
		Year:          year,
		GrossIncome:   gross,
		TotalExpenses: total,
		Breakdown:     breakdown,
	}, nil
}

// taxLabel renders a category tag as a plain English heading, not the
// bilingual label used in the ledger views: "office_supplies" becomes
// "Office Supplies".
func taxLabel(cat core.ExpenseCategory) string {
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(string(cat), "_", " "))
}
