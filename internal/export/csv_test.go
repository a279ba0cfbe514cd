package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"kakeibo/internal/core"
)

func parseCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return rows
}

func TestWriteTaxSummaryLayout(t *testing.T) {
	summary := core.TaxSummary{
		Year:          2025,
		GrossIncome:   5000000,
		TotalExpenses: 1200000,
		Breakdown: []core.CategoryBreakdown{
			{Category: core.CategoryRent, Label: "Rent", Total: 800000},
			{Category: core.CategoryUtilities, Label: "Utilities", Total: 400000},
		},
	}

	var buf bytes.Buffer
	if err := WriteTaxSummary(&buf, summary); err != nil {
		t.Fatalf("write tax summary: %v", err)
	}
	raw := buf.Bytes()

	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Fatal("output must start with a byte order mark")
	}
	// The blank separator rows survive as empty lines.
	if !bytes.Contains(raw, []byte("\r\n\r\n")) {
		t.Fatal("output should keep blank separator lines")
	}

	rows := parseCSV(t, raw)
	want := [][]string{
		{"確定申告 データ準備", "2025年"},
		{"項目 (Item)", "金額 (Amount ¥)"},
		{"収入合計 (Gross Income)", "5,000,000"},
		{"経費合計 (Total Expenses)", "1,200,000"},
		{"差引所得 (Net Income)", "3,800,000"},
		{"経費内訳 (Expense Breakdown)"},
		{"カテゴリ (Category)", "金額 (Amount ¥)"},
		{"Rent", "800,000"},
		{"Utilities", "400,000"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
}

func TestWriteIncomesSortsByDate(t *testing.T) {
	incomes := []core.Income{
		{Amount: 100000, Date: core.NewDate(2025, 3, 1), Client: "Alpha", JobType: core.JobContract},
		{Amount: 200000, Date: core.NewDate(2025, 1, 15), Client: "Beta", JobType: core.JobHourly},
	}

	var buf bytes.Buffer
	if err := WriteIncomes(&buf, incomes); err != nil {
		t.Fatalf("write incomes: %v", err)
	}

	rows := parseCSV(t, buf.Bytes())
	want := [][]string{
		{"日付 (Date)", "金額 (Amount ¥)", "クライアント (Client)", "業務種別 (Job Type)", "備考 (Notes)"},
		{"2025-01-15", "200000", "Beta", "hourly", ""},
		{"2025-03-01", "100000", "Alpha", "contract", ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}

	// The caller's slice keeps its order.
	if incomes[0].Client != "Alpha" {
		t.Fatalf("input slice reordered: %+v", incomes)
	}
}

func TestWriteExpensesRows(t *testing.T) {
	expenses := []core.Expense{
		{
			Amount:     5000,
			Category:   core.CategoryGroceries,
			Date:       core.NewDate(2025, 4, 10),
			Method:     core.PayCash,
			Recurrence: core.RecurrenceNone,
		},
	}

	var buf bytes.Buffer
	if err := WriteExpenses(&buf, expenses); err != nil {
		t.Fatalf("write expenses: %v", err)
	}

	rows := parseCSV(t, buf.Bytes())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one", len(rows))
	}
	want := []string{"2025-04-10", "5000", "groceries", "cash", "none", ""}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("row = %v, want %v", rows[1], want)
	}
}

func TestWriteExpensesEscapesNotes(t *testing.T) {
	expenses := []core.Expense{
		{
			Amount:     1200,
			Category:   core.CategoryDining,
			Date:       core.NewDate(2025, 4, 10),
			Method:     core.PayCash,
			Recurrence: core.RecurrenceNone,
			Notes:      `lunch, "standing" meeting`,
		},
	}

	var buf bytes.Buffer
	if err := WriteExpenses(&buf, expenses); err != nil {
		t.Fatalf("write expenses: %v", err)
	}

	rows := parseCSV(t, buf.Bytes())
	if got := rows[1][5]; got != `lunch, "standing" meeting` {
		t.Fatalf("notes round trip = %q", got)
	}
}

func TestExportFilenames(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{TaxSummaryFilename(2025), "tax_summary_2025.csv"},
		{IncomeFilename(2025, 0), "income_2025.csv"},
		{IncomeFilename(2025, 3), "income_2025_03.csv"},
		{ExpenseFilename(2025, 0), "expenses_2025.csv"},
		{ExpenseFilename(2025, 11), "expenses_2025_11.csv"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Fatalf("case %d: filename = %q, want %q", i, c.got, c.want)
		}
	}
}

func TestExportTaxSummaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), TaxSummaryFilename(2025))
	summary := core.TaxSummary{Year: 2025, GrossIncome: 100000, TotalExpenses: 40000}

	if err := ExportTaxSummary(path, summary); err != nil {
		t.Fatalf("export tax summary: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Fatal("file must start with a byte order mark")
	}
	if !bytes.Contains(raw, []byte("確定申告")) {
		t.Fatal("file should contain the filing header")
	}
}
