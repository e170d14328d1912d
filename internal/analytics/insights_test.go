package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var insightNow = time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)

// padding returns n small income entries inside the window so that the
// ledger clears MinInsightTransactions without touching expense totals.
func padding(n int) []Transaction {
	out := make([]Transaction, n)
	for i := range out {
		out[i] = tx(KindIncome, RecurrenceVariable, "1", "outros", date(2024, time.June, 1+i%15))
	}
	return out
}

func findInsight(insights []Insight, kind InsightKind) (Insight, bool) {
	for _, in := range insights {
		if in.Kind == kind {
			return in, true
		}
	}
	return Insight{}, false
}

func TestInsights_NotEnoughData(t *testing.T) {
	ledger := padding(9)

	insights := Insights(ledger, insightNow)
	require.Len(t, insights, 1)
	assert.Equal(t, InsightNotEnoughData, insights[0].Kind)
	assert.Equal(t, "Add more transactions to receive personalized insights", insights[0].Text)
}

func TestInsights_OldTransactionsDoNotCount(t *testing.T) {
	ledger := padding(5)
	for i := 0; i < 10; i++ {
		ledger = append(ledger, tx(KindExpense, RecurrenceVariable, "10", "lazer", date(2023, time.December, 1+i)))
	}

	insights := Insights(ledger, insightNow)
	require.Len(t, insights, 1)
	assert.Equal(t, InsightNotEnoughData, insights[0].Kind)
}

func TestInsights_TopCategory(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "300", "alimentação", date(2024, time.April, 10)),
		tx(KindExpense, RecurrenceFixed, "1200", "moradia", date(2024, time.May, 2)),
		tx(KindExpense, RecurrenceVariable, "200", "alimentação", date(2024, time.June, 3)),
	)

	insights := Insights(ledger, insightNow)
	require.NotEmpty(t, insights)
	assert.LessOrEqual(t, len(insights), MaxInsights)

	top := insights[0]
	assert.Equal(t, InsightTopCategory, top.Kind)
	assert.Equal(t, "moradia", top.Category)
	assertDecimal(t, "1200", top.Amount)
	assert.Equal(t, "Your largest spending category is 'moradia' with 1200.00 over the last 3 months", top.Text)
}

func TestInsights_TopCategoryTieKeepsFirstSeen(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "100", "transporte", date(2024, time.June, 4)),
		tx(KindExpense, RecurrenceVariable, "100", "saúde", date(2024, time.June, 5)),
	)

	insights := Insights(ledger, insightNow)
	top, ok := findInsight(insights, InsightTopCategory)
	require.True(t, ok)
	assert.Equal(t, "transporte", top.Category)
}

func TestInsights_NoExpensesNoTopCategory(t *testing.T) {
	insights := Insights(padding(12), insightNow)
	assert.Empty(t, insights)
}

func TestInsights_SpendingIncrease(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "1000", "alimentação", date(2024, time.May, 10)),
		tx(KindExpense, RecurrenceVariable, "1150", "alimentação", date(2024, time.June, 10)),
	)

	insights := Insights(ledger, insightNow)
	change, ok := findInsight(insights, InsightSpendingIncrease)
	require.True(t, ok)
	assert.Equal(t, "Your spending increased 15.0% compared to last month", change.Text)
	assertDecimal(t, "15", change.ChangePercent)
}

func TestInsights_SpendingDecrease(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "1000", "alimentação", date(2024, time.May, 10)),
		tx(KindExpense, RecurrenceVariable, "800", "alimentação", date(2024, time.June, 10)),
	)

	insights := Insights(ledger, insightNow)
	change, ok := findInsight(insights, InsightSpendingDecrease)
	require.True(t, ok)
	assert.Equal(t, "Well done! Your spending decreased 20.0% compared to last month", change.Text)
	assertDecimal(t, "-20", change.ChangePercent)
}

func TestInsights_SmallChangeIsNotReported(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "1000", "alimentação", date(2024, time.May, 10)),
		tx(KindExpense, RecurrenceVariable, "1050", "alimentação", date(2024, time.June, 10)),
	)

	insights := Insights(ledger, insightNow)
	_, up := findInsight(insights, InsightSpendingIncrease)
	_, down := findInsight(insights, InsightSpendingDecrease)
	assert.False(t, up)
	assert.False(t, down)
	require.Len(t, insights, 1)
	assert.Equal(t, InsightTopCategory, insights[0].Kind)
}

func TestInsights_NoPreviousMonthSpending(t *testing.T) {
	ledger := append(padding(8),
		tx(KindExpense, RecurrenceVariable, "500", "lazer", date(2024, time.June, 2)),
		tx(KindExpense, RecurrenceVariable, "500", "lazer", date(2024, time.June, 3)),
	)

	insights := Insights(ledger, insightNow)
	_, up := findInsight(insights, InsightSpendingIncrease)
	assert.False(t, up)
}

func TestInsights_JanuaryComparesWithDecember(t *testing.T) {
	now := time.Date(2025, time.January, 25, 9, 0, 0, 0, time.UTC)
	ledger := []Transaction{
		tx(KindExpense, RecurrenceVariable, "500", "lazer", date(2024, time.December, 5)),
		tx(KindExpense, RecurrenceVariable, "500", "lazer", date(2024, time.December, 6)),
		tx(KindExpense, RecurrenceVariable, "300", "lazer", date(2025, time.January, 5)),
		tx(KindExpense, RecurrenceVariable, "300", "lazer", date(2025, time.January, 6)),
	}
	for i := 0; i < 6; i++ {
		ledger = append(ledger, tx(KindIncome, RecurrenceFixed, "10", "salário", date(2025, time.January, 1+i)))
	}

	insights := Insights(ledger, now)
	change, ok := findInsight(insights, InsightSpendingDecrease)
	require.True(t, ok, "December 2024 must be treated as the month before January 2025")
	assertDecimal(t, "-40", change.ChangePercent)
}

func TestInsights_AtMostMaxInsights(t *testing.T) {
	ledger := padding(40)
	for i := 0; i < 20; i++ {
		ledger = append(ledger, tx(KindExpense, RecurrenceVariable, "10", "lazer", date(2024, time.May, 1+i)))
		ledger = append(ledger, tx(KindExpense, RecurrenceVariable, "30", "lazer", date(2024, time.June, 1+i)))
	}

	insights := Insights(ledger, insightNow)
	assert.LessOrEqual(t, len(insights), MaxInsights)
	assert.Equal(t, InsightTopCategory, insights[0].Kind)
}
