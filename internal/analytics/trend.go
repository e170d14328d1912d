package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTrendPoint totals one calendar month inside a trend window.
type MonthlyTrendPoint struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

// MonthlyTrend totals income and expense per month for transactions dated on
// or after now minus windowDays. Months without transactions are omitted and
// the points are returned oldest first.
func MonthlyTrend(transactions []Transaction, windowDays int, now time.Time) ([]MonthlyTrendPoint, error) {
	if windowDays <= 0 {
		return nil, ErrInvalidWindow
	}

	cutoff := dateOnly(now).AddDate(0, 0, -windowDays)

	type totals struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	groups := make(map[monthKey]*totals)

	for _, tx := range transactions {
		if calendarDate(tx.Date, now.Location()).Before(cutoff) {
			continue
		}
		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		t, ok := groups[key]
		if !ok {
			t = &totals{income: decimal.Zero, expense: decimal.Zero}
			groups[key] = t
		}
		switch tx.Kind {
		case KindIncome:
			t.income = t.income.Add(tx.Amount)
		case KindExpense:
			t.expense = t.expense.Add(tx.Amount)
		}
	}

	keys := make([]monthKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	points := make([]MonthlyTrendPoint, len(keys))
	for i, k := range keys {
		income := round(groups[k].income)
		expense := round(groups[k].expense)
		points[i] = MonthlyTrendPoint{
			Year:    k.year,
			Month:   int(k.month),
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		}
	}
	return points, nil
}

// RecentTransactions returns at most limit transactions, newest date first.
// Entries on the same date are ordered by most recent creation.
func RecentTransactions(transactions []Transaction, limit int) ([]Transaction, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := dateOnly(sorted[i].Date), dateOnly(sorted[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
