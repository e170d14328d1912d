package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// InsightWindowDays is the rolling window the heuristics look at.
	InsightWindowDays = 90
	// MinInsightTransactions is the smallest window that yields real insights.
	MinInsightTransactions = 10
	// MaxInsights caps the number of insights returned.
	MaxInsights = 3
)

// trendThreshold is the month-over-month change, in percent, that is worth reporting.
var trendThreshold = decimal.NewFromInt(10)

// InsightKind identifies the rule that produced an insight.
type InsightKind string

const (
	InsightNotEnoughData    InsightKind = "not_enough_data"
	InsightTopCategory      InsightKind = "top_category"
	InsightSpendingIncrease InsightKind = "spending_increase"
	InsightSpendingDecrease InsightKind = "spending_decrease"
)

// Insight is a short statement plus the numbers behind it.
// Category and Amount are set for top-category insights; ChangePercent is
// set (signed) for spending increase and decrease insights.
type Insight struct {
	Kind          InsightKind
	Text          string
	Category      string
	Amount        decimal.Decimal
	ChangePercent decimal.Decimal
}

// Insights derives short findings from the last InsightWindowDays of the ledger.
//
// With fewer than MinInsightTransactions in the window a single
// InsightNotEnoughData placeholder is returned. Otherwise the top expense
// category comes first, followed by the month-over-month spending change
// when it moved by more than 10%.
func Insights(transactions []Transaction, now time.Time) []Insight {
	cutoff := dateOnly(now).AddDate(0, 0, -InsightWindowDays)

	window := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !calendarDate(tx.Date, now.Location()).Before(cutoff) {
			window = append(window, tx)
		}
	}

	if len(window) < MinInsightTransactions {
		return []Insight{{
			Kind: InsightNotEnoughData,
			Text: "Add more transactions to receive personalized insights",
		}}
	}

	insights := make([]Insight, 0, MaxInsights)
	if insight, ok := topCategoryInsight(window); ok {
		insights = append(insights, insight)
	}
	if insight, ok := trendChangeInsight(window, now); ok {
		insights = append(insights, insight)
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}

// topCategoryInsight picks the expense category with the largest sum.
// On a tie the category encountered first wins.
func topCategoryInsight(window []Transaction) (Insight, bool) {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, tx := range window {
		if tx.Kind != KindExpense {
			continue
		}
		if _, ok := sums[tx.Category]; !ok {
			order = append(order, tx.Category)
			sums[tx.Category] = decimal.Zero
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}
	if len(order) == 0 {
		return Insight{}, false
	}

	top := order[0]
	for _, category := range order[1:] {
		if sums[category].GreaterThan(sums[top]) {
			top = category
		}
	}

	amount := round(sums[top])
	return Insight{
		Kind:     InsightTopCategory,
		Text:     fmt.Sprintf("Your largest spending category is '%s' with %s over the last 3 months", top, amount.StringFixed(moneyPlaces)),
		Category: top,
		Amount:   amount,
	}, true
}

// trendChangeInsight compares this calendar month's expenses with the previous one.
func trendChangeInsight(window []Transaction, now time.Time) (Insight, bool) {
	currentYear, currentMonth, _ := now.Date()
	previous := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	previousYear, previousMonth := previous.Year(), previous.Month()

	current := decimal.Zero
	last := decimal.Zero
	for _, tx := range window {
		if tx.Kind != KindExpense {
			continue
		}
		y, m, _ := tx.Date.Date()
		switch {
		case y == currentYear && m == currentMonth:
			current = current.Add(tx.Amount)
		case y == previousYear && m == previousMonth:
			last = last.Add(tx.Amount)
		}
	}

	if !last.IsPositive() {
		return Insight{}, false
	}

	change := current.Sub(last).Div(last).Mul(hundred)
	switch {
	case change.GreaterThan(trendThreshold):
		return Insight{
			Kind:          InsightSpendingIncrease,
			Text:          fmt.Sprintf("Your spending increased %s%% compared to last month", change.StringFixed(1)),
			ChangePercent: round(change),
		}, true
	case change.LessThan(trendThreshold.Neg()):
		return Insight{
			Kind:          InsightSpendingDecrease,
			Text:          fmt.Sprintf("Well done! Your spending decreased %s%% compared to last month", change.Abs().StringFixed(1)),
			ChangePercent: round(change),
		}, true
	}
	return Insight{}, false
}
