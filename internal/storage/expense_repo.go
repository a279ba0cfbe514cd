package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

const expenseColumns = "id, amount, category, expense_date, payment_method, recurrence, notes"

// ExpenseRepository maps expenses to rows of the expenses table. All list
// results come back most recent first.
type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Insert stores the expense and returns a copy carrying the assigned id.
// Any id already set on the record is ignored; the store always assigns a
// fresh one.
func (r *ExpenseRepository) Insert(ctx context.Context, e core.Expense) (core.Expense, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (amount, category, expense_date, payment_method, recurrence, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Amount, string(e.Category), e.Date.ISO(), string(e.Method), string(e.Recurrence), e.Notes)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense insert id: %w", err)
	}
	e.ID = id

	slog.InfoContext(ctx, "Expense saved",
		log.FieldID, e.ID,
		log.FieldAmount, e.Amount,
		log.FieldCategory, string(e.Category),
		log.FieldDate, e.Date.ISO())

	return e, nil
}

// Update replaces all mutable fields of the stored row. Updating an id
// that no longer exists is a silent no-op.
func (r *ExpenseRepository) Update(ctx context.Context, e core.Expense) error {
	if e.ID == 0 {
		return ErrMissingID
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses
		 SET amount = ?, category = ?, expense_date = ?, payment_method = ?, recurrence = ?, notes = ?
		 WHERE id = ?`,
		e.Amount, string(e.Category), e.Date.ISO(), string(e.Method), string(e.Recurrence), e.Notes, e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense updated", log.FieldID, e.ID)
	return nil
}

// Delete removes the row; deleting an absent id is a no-op.
func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted", log.FieldID, id)
	return nil
}

// GetByID returns the expense, or nil without error when the id is absent.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get expense by id: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) GetByDate(ctx context.Context, d core.Date) ([]core.Expense, error) {
	out, err := r.query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE expense_date = ? ORDER BY id`,
		d.ISO())
	if err != nil {
		return nil, fmt.Errorf("get expenses by date: %w", err)
	}
	return out, nil
}

func (r *ExpenseRepository) GetByMonth(ctx context.Context, year, month int) ([]core.Expense, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	out, err := r.query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE expense_date LIKE ? ORDER BY expense_date DESC`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get expenses by month: %w", err)
	}
	return out, nil
}

func (r *ExpenseRepository) GetByYear(ctx context.Context, year int) ([]core.Expense, error) {
	prefix := fmt.Sprintf("%04d", year)
	out, err := r.query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE expense_date LIKE ? ORDER BY expense_date DESC`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get expenses by year: %w", err)
	}
	return out, nil
}

// GetByDateRange returns expenses with start <= date <= end.
func (r *ExpenseRepository) GetByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	out, err := r.query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE expense_date >= ? AND expense_date <= ?
		 ORDER BY expense_date DESC`,
		start.ISO(), end.ISO())
	if err != nil {
		return nil, fmt.Errorf("get expenses by date range: %w", err)
	}
	return out, nil
}

func (r *ExpenseRepository) GetAll(ctx context.Context) ([]core.Expense, error) {
	out, err := r.query(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("get all expenses: %w", err)
	}
	return out, nil
}

func (r *ExpenseRepository) query(ctx context.Context, query string, args ...any) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var (
		e                          core.Expense
		category, day, method, rec string
	)
	if err := row.Scan(&e.ID, &e.Amount, &category, &day, &method, &rec, &e.Notes); err != nil {
		return core.Expense{}, err
	}

	d, err := core.ParseDate(day)
	if err != nil {
		return core.Expense{}, err
	}

	e.Category = core.ExpenseCategory(category)
	e.Date = d
	e.Method = core.PaymentMethod(method)
	e.Recurrence = core.RecurrenceType(rec)
	return e, nil
}
