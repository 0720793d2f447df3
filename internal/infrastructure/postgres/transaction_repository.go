package postgres

import (
	"context"
	"fmt"

	"github.com/sinawatra/TamDan/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) AddExpense(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	return r.add(ctx, "expense", transaction.KindExpense, params)
}

func (r *TransactionRepository) AddIncome(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	return r.add(ctx, "income", transaction.KindIncome, params)
}

func (r *TransactionRepository) ListExpensesByUser(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
	return r.list(ctx, "expense", transaction.KindExpense, userID)
}

func (r *TransactionRepository) ListIncomesByUser(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
	return r.list(ctx, "income", transaction.KindIncome, userID)
}

// add inserts into one of the two transaction tables. The table name is
// one of two compile-time constants, never caller input.
func (r *TransactionRepository) add(ctx context.Context, table string, kind transaction.Kind, params transaction.CreateParams) (*transaction.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, amount, category, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, amount, category, date, created_at, updated_at
	`, table)

	var t transaction.Transaction
	err := r.db.QueryRowContext(ctx, query, params.UserID, params.Amount, params.Category, params.Date).Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", kind, err)
	}

	t.Type = kind
	return &t, nil
}

// list scans one table for a user's records in insertion order; the
// caller merges and sorts.
func (r *TransactionRepository) list(ctx context.Context, table string, kind transaction.Kind, userID int64) ([]transaction.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, amount, category, date
		FROM %s
		WHERE user_id = $1
		ORDER BY id
	`, table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	defer rows.Close()

	var result []transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Category, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		t.Type = kind
		result = append(result, t)
	}

	return result, rows.Err()
}
