package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/sinawatra/TamDan/internal/domain/transaction"
)

// TransactionHandler records expenses and incomes and serves the merged
// per-user listing.
type TransactionHandler struct {
	transactions transaction.Repository
}

func NewTransactionHandler(transactions transaction.Repository) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type addTransactionRequest struct {
	UserID   int64            `json:"userId"`
	Amount   float64          `json:"amount"`
	Category string           `json:"category"`
	Date     transaction.Date `json:"date"`
}

func (h *TransactionHandler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	h.handleAdd(w, r, h.transactions.AddExpense)
}

func (h *TransactionHandler) HandleAddIncome(w http.ResponseWriter, r *http.Request) {
	h.handleAdd(w, r, h.transactions.AddIncome)
}

type addFunc func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)

func (h *TransactionHandler) handleAdd(w http.ResponseWriter, r *http.Request, add addFunc) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := add(r.Context(), transaction.CreateParams{
		UserID:   req.UserID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		var verr *transaction.ValidationError
		if errors.As(err, &verr) {
			fail(w, http.StatusBadRequest, verr.Reason)
			return
		}
		log.Printf("Error saving transaction: %v", err)
		internalError(w, "Could not save transaction")
		return
	}

	respond(w, http.StatusCreated, envelope{
		"status": statusSuccess,
		"data": envelope{
			"id":       t.ID,
			"userId":   t.UserID,
			"amount":   t.Amount,
			"category": t.Category,
			"date":     t.Date,
		},
	})
}

// HandleListTransactions merges a user's expenses and incomes into a
// single list, newest first.
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	raw := r.URL.Query().Get("userId")
	if raw == "" {
		fail(w, http.StatusBadRequest, "User ID is required")
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		fail(w, http.StatusBadRequest, "User ID must be a positive number")
		return
	}

	expenses, err := h.transactions.ListExpensesByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing expenses: %v", err)
		internalError(w, "Could not fetch transactions")
		return
	}
	incomes, err := h.transactions.ListIncomesByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing incomes: %v", err)
		internalError(w, "Could not fetch transactions")
		return
	}

	respond(w, http.StatusOK, envelope{
		"status": statusSuccess,
		"data":   transaction.Merge(expenses, incomes),
	})
}
