package transaction

import "sort"

// Merge combines a user's expenses and incomes into one list ordered by
// date descending (most recent first). The sort is stable over the
// concatenation [expenses..., incomes...], so records sharing a date keep
// insertion order with expenses ahead of incomes.
func Merge(expenses, incomes []Transaction) []Transaction {
	merged := make([]Transaction, 0, len(expenses)+len(incomes))
	merged = append(merged, expenses...)
	merged = append(merged, incomes...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	return merged
}
