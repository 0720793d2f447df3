package transaction

import (
	"testing"
	"time"
)

func tx(id int64, kind Kind, amount float64, category, date string) Transaction {
	d, _ := ParseDate(date)
	return Transaction{ID: id, Amount: amount, Category: category, Date: d, Type: kind}
}

func TestMerge_SortsByDateDescending(t *testing.T) {
	expenses := []Transaction{
		tx(1, KindExpense, 50, "food", "2024-01-01"),
	}
	incomes := []Transaction{
		tx(1, KindIncome, 1000, "salary", "2024-01-15"),
	}

	merged := Merge(expenses, incomes)

	if len(merged) != 2 {
		t.Fatalf("Merge() returned %d transactions, want 2", len(merged))
	}
	if merged[0].Category != "salary" || merged[0].Type != KindIncome {
		t.Errorf("merged[0] = %s/%s, want salary/income", merged[0].Category, merged[0].Type)
	}
	if merged[1].Category != "food" || merged[1].Type != KindExpense {
		t.Errorf("merged[1] = %s/%s, want food/expense", merged[1].Category, merged[1].Type)
	}
}

func TestMerge_StableTieBreak(t *testing.T) {
	// Equal dates: expenses keep insertion order and come before incomes.
	expenses := []Transaction{
		tx(1, KindExpense, 10, "coffee", "2024-03-10"),
		tx(2, KindExpense, 20, "lunch", "2024-03-10"),
	}
	incomes := []Transaction{
		tx(1, KindIncome, 500, "bonus", "2024-03-10"),
	}

	merged := Merge(expenses, incomes)

	want := []string{"coffee", "lunch", "bonus"}
	for i, category := range want {
		if merged[i].Category != category {
			t.Errorf("merged[%d].Category = %q, want %q", i, merged[i].Category, category)
		}
	}
}

func TestMerge_Interleaved(t *testing.T) {
	expenses := []Transaction{
		tx(1, KindExpense, 50, "food", "2024-01-05"),
		tx(2, KindExpense, 30, "transport", "2024-02-20"),
	}
	incomes := []Transaction{
		tx(1, KindIncome, 1000, "salary", "2024-01-31"),
		tx(2, KindIncome, 200, "freelance", "2024-02-01"),
	}

	merged := Merge(expenses, incomes)

	want := []string{"transport", "freelance", "salary", "food"}
	for i, category := range want {
		if merged[i].Category != category {
			t.Errorf("merged[%d].Category = %q, want %q", i, merged[i].Category, category)
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	merged := Merge(nil, nil)
	if merged == nil {
		t.Fatal("Merge() returned nil, want empty slice")
	}
	if len(merged) != 0 {
		t.Errorf("Merge() returned %d transactions, want 0", len(merged))
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	expenses := []Transaction{
		tx(1, KindExpense, 50, "food", "2024-01-01"),
		tx(2, KindExpense, 20, "bus", "2024-01-02"),
	}
	Merge(expenses, []Transaction{tx(1, KindIncome, 5, "tip", "2024-01-03")})

	if expenses[0].Category != "food" || expenses[1].Category != "bus" {
		t.Error("Merge() reordered the input slice")
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, time.May, 7, 13, 45, 0, 0, time.UTC))
	if d.String() != "2024-05-07" {
		t.Errorf("DateOf() = %s, want 2024-05-07", d)
	}
}
