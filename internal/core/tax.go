package core

// CategoryBreakdown is one expense category's total within a tax summary.
type CategoryBreakdown struct {
	Category ExpenseCategory
	Label    string // title-cased tag, e.g. "Office Supplies"
	Total    int64
}

// TaxSummary aggregates one tax year for 確定申告 preparation. The Japanese
// tax year runs January 1 through December 31, with filing due the
// following March 15.
type TaxSummary struct {
	Year          int
	GrossIncome   int64
	TotalExpenses int64
	Breakdown     []CategoryBreakdown // descending by total
}

// NetIncome returns gross income minus total expenses. It may be negative.
func (s TaxSummary) NetIncome() int64 {
	return s.GrossIncome - s.TotalExpenses
}
