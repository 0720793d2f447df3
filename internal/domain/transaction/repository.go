package transaction

import "context"

// Repository defines the interface for transaction data access.
// Expenses and incomes live in separate tables with identical shapes;
// list results come back in insertion (id) order.
type Repository interface {
	AddExpense(ctx context.Context, params CreateParams) (*Transaction, error)
	AddIncome(ctx context.Context, params CreateParams) (*Transaction, error)
	ListExpensesByUser(ctx context.Context, userID int64) ([]Transaction, error)
	ListIncomesByUser(ctx context.Context, userID int64) ([]Transaction, error)
}
