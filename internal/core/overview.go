package core

// YearOverview is the year-at-a-glance aggregate shown when the ledger
// opens. Monthly slices are indexed by month-1.
type YearOverview struct {
	Year            int
	MonthlyIncome   [12]int64
	MonthlyExpenses [12]int64
	TotalIncome     int64
	TotalExpenses   int64
	Net             int64
	AvgMonthlyNet   int64
}
