package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashmind/internal/analytics"
)

// Money values are decimal strings with two places.

type Summary struct {
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	Income            string `json:"income"`
	Expense           string `json:"expense"`
	Balance           string `json:"balance"`
	FixedExpense      string `json:"fixedExpense"`
	VariableExpense   string `json:"variableExpense"`
	ExpensePercentage string `json:"expensePercentage" doc:"Share of income spent, 0 when there is no income"`
	TransactionCount  int    `json:"transactionCount"`
}

type CategoryAmount struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage" doc:"Share of the period's expense total"`
	Count      int    `json:"count"`
}

type TrendPoint struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

type RecentTransaction struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	Kind       string `json:"kind"`
	Recurrence string `json:"recurrence"`
	Category   string `json:"category"`
	Date       string `json:"date" doc:"YYYY-MM-DD"`
}

type Insight struct {
	Kind          string  `json:"kind" enum:"not_enough_data,top_category,spending_increase,spending_decrease"`
	Text          string  `json:"text"`
	Category      string  `json:"category,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	ChangePercent *string `json:"changePercent,omitempty" doc:"Signed month-over-month change"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func summaryFrom(s analytics.PeriodSummary) Summary {
	return Summary{
		Month:             s.Month,
		Year:              s.Year,
		Income:            money(s.Income),
		Expense:           money(s.Expense),
		Balance:           money(s.Balance),
		FixedExpense:      money(s.FixedExpense),
		VariableExpense:   money(s.VariableExpense),
		ExpensePercentage: money(s.ExpensePercentage),
		TransactionCount:  s.TransactionCount,
	}
}

func breakdownFrom(b analytics.CategoryBreakdown) []CategoryAmount {
	out := make([]CategoryAmount, len(b))
	for i, c := range b {
		out[i] = CategoryAmount{
			Category:   c.Category,
			Amount:     money(c.Amount),
			Percentage: money(c.Percentage),
			Count:      c.Count,
		}
	}
	return out
}

func trendFrom(points []analytics.MonthlyTrendPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{
			Year:    p.Year,
			Month:   p.Month,
			Income:  money(p.Income),
			Expense: money(p.Expense),
			Balance: money(p.Balance),
		}
	}
	return out
}

func recentFrom(txs []analytics.Transaction) []RecentTransaction {
	out := make([]RecentTransaction, len(txs))
	for i, tx := range txs {
		out[i] = RecentTransaction{
			ID:         tx.ID.String(),
			Name:       tx.Name,
			Amount:     money(tx.Amount),
			Kind:       string(tx.Kind),
			Recurrence: string(tx.Recurrence),
			Category:   tx.Category,
			Date:       tx.Date.Format(time.DateOnly),
		}
	}
	return out
}

func insightsFrom(insights []analytics.Insight) []Insight {
	out := make([]Insight, len(insights))
	for i, in := range insights {
		out[i] = Insight{Kind: string(in.Kind), Text: in.Text, Category: in.Category}
		switch in.Kind {
		case analytics.InsightTopCategory:
			amount := money(in.Amount)
			out[i].Amount = &amount
		case analytics.InsightSpendingIncrease, analytics.InsightSpendingDecrease:
			change := in.ChangePercent.StringFixed(1)
			out[i].ChangePercent = &change
		}
	}
	return out
}
