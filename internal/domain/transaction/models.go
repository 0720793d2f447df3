package transaction

import (
	"fmt"
	"time"
)

// Kind discriminates the two transaction tables in merged output.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

type Transaction struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId,omitempty"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     Date    `json:"date"`
	Type     Kind    `json:"type,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type CreateParams struct {
	UserID   int64
	Amount   float64
	Category string
	Date     Date
}

// Validate checks that every mandatory field is present and well formed.
// It runs before any insert so that invalid input never reaches storage.
func (p CreateParams) Validate() error {
	switch {
	case p.UserID <= 0:
		return &ValidationError{Reason: "userId is required"}
	case p.Amount <= 0:
		return &ValidationError{Reason: "amount must be a positive number"}
	case p.Category == "":
		return &ValidationError{Reason: "category is required"}
	case p.Date.IsZero():
		return &ValidationError{Reason: "date is required"}
	}
	return nil
}

// ValidationError reports a missing or malformed transaction field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %s", e.Reason)
}
