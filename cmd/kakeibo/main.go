package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kakeibo/internal/cli"
	"kakeibo/internal/core"
	"kakeibo/internal/export"
	"kakeibo/internal/log"
	"kakeibo/internal/services"
	"kakeibo/internal/storage"
)

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()

	var (
		dbPath   = flag.String("db", cfg.DBPath, "ledger database file")
		year     = flag.Int("year", time.Now().Year(), "reporting year")
		doExport = flag.Bool("export", false, "write the year's CSV exports to the export directory")
	)
	flag.Parse()

	logger := cli.SetupLogger(cfg.LogLevel)
	store := cli.InitStore(logger, *dbPath)
	defer store.Close()

	db := store.DB()
	incomes := services.NewIncomeService(storage.NewIncomeRepository(db))
	expenses := services.NewExpenseService(storage.NewExpenseRepository(db))
	settings := storage.NewSettingsRepository(db)
	dashboard := services.NewDashboardService(incomes, expenses)
	tax := services.NewTaxService(incomes, expenses)

	ctx := context.Background()

	if err := settings.Put(ctx, "last_opened", core.Today().ISO()); err != nil {
		logger.Warn("Failed to record last opened date", log.FieldError, err)
	}

	overview, err := dashboard.Overview(ctx, *year)
	if err != nil {
		logger.Error("Failed to build overview", log.FieldError, err, log.FieldYear, *year)
		os.Exit(1)
	}
	printOverview(overview)

	summary, err := tax.Summary(ctx, *year)
	if err != nil {
		logger.Error("Failed to build tax summary", log.FieldError, err, log.FieldYear, *year)
		os.Exit(1)
	}
	printTaxSummary(summary)

	if *doExport {
		if err := exportYear(ctx, cfg.ExportDir, *year, summary, incomes, expenses); err != nil {
			logger.Error("Export failed", log.FieldError, err, log.FieldYear, *year)
			os.Exit(1)
		}
	}
}

func printOverview(ov core.YearOverview) {
	fmt.Printf("Overview %d\n", ov.Year)
	for m := 0; m < 12; m++ {
		if ov.MonthlyIncome[m] == 0 && ov.MonthlyExpenses[m] == 0 {
			continue
		}
		fmt.Printf("  %s  income %14s   expenses %14s\n",
			time.Month(m+1).String()[:3],
			core.FormatYen(ov.MonthlyIncome[m]),
			core.FormatYen(ov.MonthlyExpenses[m]))
	}
	fmt.Printf("  Total income:    %s\n", core.FormatYen(ov.TotalIncome))
	fmt.Printf("  Total expenses:  %s\n", core.FormatYen(ov.TotalExpenses))
	fmt.Printf("  Net:             %s\n", core.FormatYen(ov.Net))
	fmt.Printf("  Avg monthly net: %s\n", core.FormatYen(ov.AvgMonthlyNet))
}

func printTaxSummary(s core.TaxSummary) {
	fmt.Printf("\nTax summary %d\n", s.Year)
	fmt.Printf("  Gross income:   %s\n", core.FormatYen(s.GrossIncome))
	fmt.Printf("  Total expenses: %s\n", core.FormatYen(s.TotalExpenses))
	fmt.Printf("  Net income:     %s\n", core.FormatYen(s.NetIncome()))
	for _, b := range s.Breakdown {
		fmt.Printf("    %-16s %s\n", b.Label, core.FormatYen(b.Total))
	}
}

func exportYear(ctx context.Context, dir string, year int, summary core.TaxSummary, incomes *services.IncomeService, expenses *services.ExpenseService) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	if err := export.ExportTaxSummary(filepath.Join(dir, export.TaxSummaryFilename(year)), summary); err != nil {
		return err
	}

	yearIncomes, err := incomes.YearlyIncomes(ctx, year)
	if err != nil {
		return fmt.Errorf("yearly incomes: %w", err)
	}
	if err := export.ExportIncomes(filepath.Join(dir, export.IncomeFilename(year, 0)), yearIncomes); err != nil {
		return err
	}

	yearExpenses, err := expenses.YearlyExpenses(ctx, year)
	if err != nil {
		return fmt.Errorf("yearly expenses: %w", err)
	}
	return export.ExportExpenses(filepath.Join(dir, export.ExpenseFilename(year, 0)), yearExpenses)
}
