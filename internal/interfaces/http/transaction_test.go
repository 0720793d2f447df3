package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sinawatra/TamDan/internal/domain/transaction"
)

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	AddExpenseFunc         func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	AddIncomeFunc          func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	ListExpensesByUserFunc func(ctx context.Context, userID int64) ([]transaction.Transaction, error)
	ListIncomesByUserFunc  func(ctx context.Context, userID int64) ([]transaction.Transaction, error)
}

func (m *MockTransactionRepo) AddExpense(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.AddExpenseFunc != nil {
		return m.AddExpenseFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) AddIncome(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.AddIncomeFunc != nil {
		return m.AddIncomeFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) ListExpensesByUser(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
	if m.ListExpensesByUserFunc != nil {
		return m.ListExpensesByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTransactionRepo) ListIncomesByUser(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
	if m.ListIncomesByUserFunc != nil {
		return m.ListIncomesByUserFunc(ctx, userID)
	}
	return nil, nil
}

func echoAdd(kind transaction.Kind) func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	return func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
		if err := params.Validate(); err != nil {
			return nil, err
		}
		return &transaction.Transaction{
			ID:       42,
			UserID:   params.UserID,
			Amount:   params.Amount,
			Category: params.Category,
			Date:     params.Date,
			Type:     kind,
		}, nil
	}
}

func TestHandleAddExpense(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockRepo       func() *MockTransactionRepo
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"userId":1,"amount":12.50,"category":"food","date":"2026-08-30"}`,
			mockRepo: func() *MockTransactionRepo {
				return &MockTransactionRepo{AddExpenseFunc: echoAdd(transaction.KindExpense)}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Category",
			body: `{"userId":1,"amount":12.50,"date":"2026-08-30"}`,
			mockRepo: func() *MockTransactionRepo {
				return &MockTransactionRepo{AddExpenseFunc: echoAdd(transaction.KindExpense)}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing Date",
			body: `{"userId":1,"amount":12.50,"category":"food"}`,
			mockRepo: func() *MockTransactionRepo {
				return &MockTransactionRepo{AddExpenseFunc: echoAdd(transaction.KindExpense)}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Negative Amount",
			body: `{"userId":1,"amount":-3,"category":"food","date":"2026-08-30"}`,
			mockRepo: func() *MockTransactionRepo {
				return &MockTransactionRepo{AddExpenseFunc: echoAdd(transaction.KindExpense)}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Body",
			body:           `{not json`,
			mockRepo:       func() *MockTransactionRepo { return &MockTransactionRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Repository Error",
			body: `{"userId":1,"amount":12.50,"category":"food","date":"2026-08-30"}`,
			mockRepo: func() *MockTransactionRepo {
				return &MockTransactionRepo{
					AddExpenseFunc: func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
						return nil, errors.New("connection refused")
					},
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(tt.mockRepo())

			req := httptest.NewRequest(http.MethodPost, "/expense", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.HandleAddExpense(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.expectedStatus != http.StatusCreated {
				return
			}
			body := decodeBody(t, rr)
			data, _ := body["data"].(map[string]any)
			if data["id"] != float64(42) || data["userId"] != float64(1) {
				t.Errorf("unexpected data payload: %v", data)
			}
			if data["date"] != "2026-08-30" {
				t.Errorf("expected date 2026-08-30, got %v", data["date"])
			}
		})
	}
}

func TestHandleAddIncome(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionRepo{
		AddIncomeFunc: echoAdd(transaction.KindIncome),
	})

	body := `{"userId":2,"amount":2500,"category":"salary","date":"2026-08-01"}`
	req := httptest.NewRequest(http.MethodPost, "/income", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	handler.HandleAddIncome(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	if data["category"] != "salary" || data["amount"] != float64(2500) {
		t.Errorf("unexpected data payload: %v", data)
	}
}

func TestHandleListTransactions(t *testing.T) {
	mustDate := func(s string) transaction.Date {
		d, err := transaction.ParseDate(s)
		if err != nil {
			t.Fatalf("parsing date %q: %v", s, err)
		}
		return d
	}

	expenses := []transaction.Transaction{
		{ID: 1, Amount: 10, Category: "food", Date: mustDate("2026-08-10"), Type: transaction.KindExpense},
		{ID: 2, Amount: 20, Category: "transport", Date: mustDate("2026-08-20"), Type: transaction.KindExpense},
	}
	incomes := []transaction.Transaction{
		{ID: 1, Amount: 2500, Category: "salary", Date: mustDate("2026-08-15"), Type: transaction.KindIncome},
	}

	t.Run("Merged Newest First", func(t *testing.T) {
		handler := NewTransactionHandler(&MockTransactionRepo{
			ListExpensesByUserFunc: func(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
				if userID != 5 {
					t.Errorf("expected userID 5, got %d", userID)
				}
				return expenses, nil
			},
			ListIncomesByUserFunc: func(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
				return incomes, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/transactions?userId=5", nil)
		rr := httptest.NewRecorder()
		handler.HandleListTransactions(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}

		var body struct {
			Status string                    `json:"status"`
			Data   []transaction.Transaction `json:"data"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		want := []struct {
			date string
			kind transaction.Kind
		}{
			{"2026-08-20", transaction.KindExpense},
			{"2026-08-15", transaction.KindIncome},
			{"2026-08-10", transaction.KindExpense},
		}
		if len(body.Data) != len(want) {
			t.Fatalf("expected %d transactions, got %d", len(want), len(body.Data))
		}
		for i, w := range want {
			if body.Data[i].Date.String() != w.date || body.Data[i].Type != w.kind {
				t.Errorf("position %d: expected %s %s, got %s %s",
					i, w.date, w.kind, body.Data[i].Date, body.Data[i].Type)
			}
		}
	})

	t.Run("Empty Is An Array", func(t *testing.T) {
		handler := NewTransactionHandler(&MockTransactionRepo{
			ListExpensesByUserFunc: func(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
				return []transaction.Transaction{}, nil
			},
			ListIncomesByUserFunc: func(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
				return []transaction.Transaction{}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/transactions?userId=5", nil)
		rr := httptest.NewRecorder()
		handler.HandleListTransactions(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
		body := decodeBody(t, rr)
		if _, ok := body["data"].([]any); !ok {
			t.Errorf("expected data to be a JSON array, got %T", body["data"])
		}
	})

	t.Run("Missing UserID", func(t *testing.T) {
		handler := NewTransactionHandler(&MockTransactionRepo{})
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rr := httptest.NewRecorder()
		handler.HandleListTransactions(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rr.Code)
		}
	})

	t.Run("Non-Numeric UserID", func(t *testing.T) {
		handler := NewTransactionHandler(&MockTransactionRepo{})
		req := httptest.NewRequest(http.MethodGet, "/transactions?userId=abc", nil)
		rr := httptest.NewRecorder()
		handler.HandleListTransactions(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rr.Code)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		handler := NewTransactionHandler(&MockTransactionRepo{
			ListExpensesByUserFunc: func(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
				return nil, errors.New("connection refused")
			},
		})
		req := httptest.NewRequest(http.MethodGet, "/transactions?userId=5", nil)
		rr := httptest.NewRecorder()
		handler.HandleListTransactions(rr, req)
		if rr.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rr.Code)
		}
	})
}
