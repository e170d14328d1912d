package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PeriodSummary totals one calendar month of a ledger.
type PeriodSummary struct {
	Month             int
	Year              int
	Income            decimal.Decimal
	Expense           decimal.Decimal
	Balance           decimal.Decimal
	FixedExpense      decimal.Decimal
	VariableExpense   decimal.Decimal
	ExpensePercentage decimal.Decimal
	TransactionCount  int
}

// CategoryAmount is one row of a CategoryBreakdown.
type CategoryAmount struct {
	Category   string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	Count      int
}

// CategoryBreakdown lists expense categories by descending amount.
type CategoryBreakdown []CategoryAmount

// Total sums the amounts of every row.
func (b CategoryBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b {
		total = total.Add(c.Amount)
	}
	return total
}

// Summarize totals the transactions dated in the given month.
//
// Balance is derived from the rounded income and expense so that
// Balance == Income - Expense holds exactly on the presented values.
func Summarize(transactions []Transaction, month, year int) (PeriodSummary, error) {
	if err := ValidatePeriod(month); err != nil {
		return PeriodSummary{}, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	fixed := decimal.Zero
	variable := decimal.Zero
	count := 0

	for _, tx := range transactions {
		if !inPeriod(tx.Date, month, year) {
			continue
		}
		count++

		switch tx.Kind {
		case KindIncome:
			income = income.Add(tx.Amount)
		case KindExpense:
			expense = expense.Add(tx.Amount)
			switch tx.Recurrence {
			case RecurrenceFixed:
				fixed = fixed.Add(tx.Amount)
			case RecurrenceVariable:
				variable = variable.Add(tx.Amount)
			}
		}
	}

	roundedIncome := round(income)
	roundedExpense := round(expense)

	return PeriodSummary{
		Month:             month,
		Year:              year,
		Income:            roundedIncome,
		Expense:           roundedExpense,
		Balance:           roundedIncome.Sub(roundedExpense),
		FixedExpense:      round(fixed),
		VariableExpense:   round(variable),
		ExpensePercentage: round(percentOf(expense, income)),
		TransactionCount:  count,
	}, nil
}

// BreakdownByCategory groups the month's expenses by category.
//
// Rows are sorted by descending amount; categories with equal amounts keep
// the order in which they were first seen.
func BreakdownByCategory(transactions []Transaction, month, year int) (CategoryBreakdown, error) {
	if err := ValidatePeriod(month); err != nil {
		return nil, err
	}

	type accumulator struct {
		category string
		amount   decimal.Decimal
		count    int
	}

	var groups []*accumulator
	index := make(map[string]*accumulator)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Kind != KindExpense || !inPeriod(tx.Date, month, year) {
			continue
		}
		acc, ok := index[tx.Category]
		if !ok {
			acc = &accumulator{category: tx.Category, amount: decimal.Zero}
			index[tx.Category] = acc
			groups = append(groups, acc)
		}
		acc.amount = acc.amount.Add(tx.Amount)
		acc.count++
		total = total.Add(tx.Amount)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].amount.GreaterThan(groups[j].amount)
	})

	breakdown := make(CategoryBreakdown, len(groups))
	for i, acc := range groups {
		breakdown[i] = CategoryAmount{
			Category:   acc.category,
			Amount:     round(acc.amount),
			Percentage: round(percentOf(acc.amount, total)),
			Count:      acc.count,
		}
	}
	return breakdown, nil
}
