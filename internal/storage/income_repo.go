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

const incomeColumns = "id, amount, income_date, client, job_type, notes"

// IncomeRepository maps incomes to rows of the incomes table. All list
// results come back most recent first.
type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// Insert stores the income and returns a copy carrying the assigned id.
// Any id already set on the record is ignored; the store always assigns a
// fresh one.
func (r *IncomeRepository) Insert(ctx context.Context, in core.Income) (core.Income, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (amount, income_date, client, job_type, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Amount, in.Date.ISO(), in.Client, string(in.JobType), in.Notes)
	if err != nil {
		return core.Income{}, fmt.Errorf("insert income: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Income{}, fmt.Errorf("income insert id: %w", err)
	}
	in.ID = id

	slog.InfoContext(ctx, "Income saved",
		log.FieldID, in.ID,
		log.FieldAmount, in.Amount,
		log.FieldClient, in.Client,
		log.FieldDate, in.Date.ISO())

	return in, nil
}

// Update replaces all mutable fields of the stored row. Updating an id
// that no longer exists is a silent no-op.
func (r *IncomeRepository) Update(ctx context.Context, in core.Income) error {
	if in.ID == 0 {
		return ErrMissingID
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE incomes
		 SET amount = ?, income_date = ?, client = ?, job_type = ?, notes = ?
		 WHERE id = ?`,
		in.Amount, in.Date.ISO(), in.Client, string(in.JobType), in.Notes, in.ID)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}

	slog.InfoContext(ctx, "Income updated", log.FieldID, in.ID)
	return nil
}

// Delete removes the row; deleting an absent id is a no-op.
func (r *IncomeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete income: %w", err)
	}

	slog.InfoContext(ctx, "Income deleted", log.FieldID, id)
	return nil
}

// GetByID returns the income, or nil without error when the id is absent.
func (r *IncomeRepository) GetByID(ctx context.Context, id int64) (*core.Income, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE id = ?`, id)

	in, err := scanIncome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get income by id: %w", err)
	}
	return &in, nil
}

func (r *IncomeRepository) GetByDate(ctx context.Context, d core.Date) ([]core.Income, error) {
	out, err := r.query(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE income_date = ? ORDER BY id`,
		d.ISO())
	if err != nil {
		return nil, fmt.Errorf("get incomes by date: %w", err)
	}
	return out, nil
}

func (r *IncomeRepository) GetByMonth(ctx context.Context, year, month int) ([]core.Income, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	out, err := r.query(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE income_date LIKE ? ORDER BY income_date DESC`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get incomes by month: %w", err)
	}
	return out, nil
}

func (r *IncomeRepository) GetByYear(ctx context.Context, year int) ([]core.Income, error) {
	prefix := fmt.Sprintf("%04d", year)
	out, err := r.query(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE income_date LIKE ? ORDER BY income_date DESC`,
		prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("get incomes by year: %w", err)
	}
	return out, nil
}

// GetByDateRange returns incomes with start <= date <= end.
func (r *IncomeRepository) GetByDateRange(ctx context.Context, start, end core.Date) ([]core.Income, error) {
	out, err := r.query(ctx,
		`SELECT `+incomeColumns+` FROM incomes
		 WHERE income_date >= ? AND income_date <= ?
		 ORDER BY income_date DESC`,
		start.ISO(), end.ISO())
	if err != nil {
		return nil, fmt.Errorf("get incomes by date range: %w", err)
	}
	return out, nil
}

func (r *IncomeRepository) GetAll(ctx context.Context) ([]core.Income, error) {
	out, err := r.query(ctx,
		`SELECT `+incomeColumns+` FROM incomes ORDER BY income_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("get all incomes: %w", err)
	}
	return out, nil
}

// DistinctClients returns every client name once, alphabetically.
func (r *IncomeRepository) DistinctClients(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT client FROM incomes ORDER BY client`)
	if err != nil {
		return nil, fmt.Errorf("get distinct clients: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var client string
		if err := rows.Scan(&client); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distinct clients: %w", err)
	}
	return out, nil
}

func (r *IncomeRepository) query(ctx context.Context, query string, args ...any) ([]core.Income, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Income
	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func scanIncome(row rowScanner) (core.Income, error) {
	var (
		in       core.Income
		day, job string
	)
	if err := row.Scan(&in.ID, &in.Amount, &day, &in.Client, &job, &in.Notes); err != nil {
		return core.Income{}, err
	}

	d, err := core.ParseDate(day)
	if err != nil {
		return core.Income{}, err
	}

	in.Date = d
	in.JobType = core.JobType(job)
	return in, nil
}
