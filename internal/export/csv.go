// Package export writes ledger data as CSV for spreadsheet use during
// tax filing. Every file starts with a UTF-8 byte order mark so Excel
// detects the Japanese headers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteTaxSummary writes the fixed-layout filing summary. Amounts carry
// thousands separators here, unlike the raw list exports.
func WriteTaxSummary(w io.Writer, summary core.TaxSummary) error {
	cw, err := newCSVWriter(w)
	if err != nil {
		return err
	}

	rows := [][]string{
		{"確定申告 データ準備", fmt.Sprintf("%d年", summary.Year)},
		{},
		{"項目 (Item)", "金額 (Amount ¥)"},
		{"収入合計 (Gross Income)", humanize.Comma(summary.GrossIncome)},
		{"経費合計 (Total Expenses)", humanize.Comma(summary.TotalExpenses)},
		{"差引所得 (Net Income)", humanize.Comma(summary.NetIncome())},
		{},
		{"経費内訳 (Expense Breakdown)"},
		{"カテゴリ (Category)", "金額 (Amount ¥)"},
	}
	for _, b := range summary.Breakdown {
		rows = append(rows, []string{b.Label, humanize.Comma(b.Total)})
	}
	return writeRows(cw, rows)
}

// WriteIncomes writes one row per income entry, ascending by date no
// matter how the input is ordered.
func WriteIncomes(w io.Writer, incomes []core.Income) error {
	cw, err := newCSVWriter(w)
	if err != nil {
		return err
	}

	rows := [][]string{{
		"日付 (Date)",
		"金額 (Amount ¥)",
		"クライアント (Client)",
		"業務種別 (Job Type)",
		"備考 (Notes)",
	}}
	for _, in := range sortedIncomes(incomes) {
		rows = append(rows, []string{
			in.Date.ISO(),
			strconv.FormatInt(in.Amount, 10),
			in.Client,
			string(in.JobType),
			in.Notes,
		})
	}
	return writeRows(cw, rows)
}

// WriteExpenses writes one row per expense, ascending by date no matter
// how the input is ordered.
func WriteExpenses(w io.Writer, expenses []core.Expense) error {
	cw, err := newCSVWriter(w)
	if err != nil {
		return err
	}

	rows := [][]string{{
		"日付 (Date)",
		"金額 (Amount ¥)",
		"カテゴリ (Category)",
		"支払方法 (Payment Method)",
		"繰返 (Recurrence)",
		"備考 (Notes)",
	}}
	for _, e := range sortedExpenses(expenses) {
		rows = append(rows, []string{
			e.Date.ISO(),
			strconv.FormatInt(e.Amount, 10),
			string(e.Category),
			string(e.Method),
			string(e.Recurrence),
			e.Notes,
		})
	}
	return writeRows(cw, rows)
}

// ExportTaxSummary writes the filing summary to a new file at path.
func ExportTaxSummary(path string, summary core.TaxSummary) error {
	if err := exportFile(path, func(w io.Writer) error {
		return WriteTaxSummary(w, summary)
	}); err != nil {
		return err
	}
	slog.Info("Tax summary exported", log.FieldPath, path, log.FieldYear, summary.Year)
	return nil
}

// ExportIncomes writes income entries to a new file at path.
func ExportIncomes(path string, incomes []core.Income) error {
	if err := exportFile(path, func(w io.Writer) error {
		return WriteIncomes(w, incomes)
	}); err != nil {
		return err
	}
	slog.Info("Income CSV exported", log.FieldPath, path, log.FieldCount, len(incomes))
	return nil
}

// ExportExpenses writes expenses to a new file at path.
func ExportExpenses(path string, expenses []core.Expense) error {
	if err := exportFile(path, func(w io.Writer) error {
		return WriteExpenses(w, expenses)
	}); err != nil {
		return err
	}
	slog.Info("Expense CSV exported", log.FieldPath, path, log.FieldCount, len(expenses))
	return nil
}

// TaxSummaryFilename is the default file name for a tax summary export.
func TaxSummaryFilename(year int) string {
	return fmt.Sprintf("tax_summary_%d.csv", year)
}

// IncomeFilename is the default file name for an income export. Month 0
// means the whole year.
func IncomeFilename(year, month int) string {
	if month == 0 {
		return fmt.Sprintf("income_%d.csv", year)
	}
	return fmt.Sprintf("income_%d_%02d.csv", year, month)
}

// ExpenseFilename is the default file name for an expense export. Month 0
// means the whole year.
func ExpenseFilename(year, month int) string {
	if month == 0 {
		return fmt.Sprintf("expenses_%d.csv", year)
	}
	return fmt.Sprintf("expenses_%d_%02d.csv", year, month)
}

func newCSVWriter(w io.Writer) (*csv.Writer, error) {
	if _, err := w.Write(utf8BOM); err != nil {
		return nil, fmt.Errorf("write byte order mark: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true // Excel line endings
	return cw, nil
}

func writeRows(cw *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedIncomes(incomes []core.Income) []core.Income {
	out := make([]core.Income, len(incomes))
	copy(out, incomes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}

func sortedExpenses(expenses []core.Expense) []core.Expense {
	out := make([]core.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}
