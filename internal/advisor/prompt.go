package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carson-networks/cashmind/internal/analytics"
)

const promptTemplate = `You are a personal finance consultant reviewing a user's spending.

Figures for %02d/%d:
- Total income: %s
- Total expenses: %s
- Balance: %s
- Share of income spent: %s%%
- Fixed expenses: %s
- Variable expenses: %s

Expenses by category:
%s

Please provide:
1. A general assessment of the user's financial health (2-3 paragraphs)
2. Positive points you identified
3. Points that need attention
4. 3-5 specific, practical recommendations to improve their finances

Be direct, practical and encouraging. Use simple, friendly language.
Answer only with a JSON object with the keys "general_analysis", "positive_points", "attention_points" and "recommendations" (an array of strings).`

// BuildPrompt renders the fixed analysis prompt for a period. Amounts are
// written with two decimals and categories are listed by descending amount,
// so equal inputs always give byte-identical prompts.
func BuildPrompt(summary analytics.PeriodSummary, breakdown analytics.CategoryBreakdown) string {
	rows := make(analytics.CategoryBreakdown, len(breakdown))
	copy(rows, breakdown)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})

	var categories strings.Builder
	if len(rows) == 0 {
		categories.WriteString("- no expenses recorded")
	}
	for i, row := range rows {
		if i > 0 {
			categories.WriteByte('\n')
		}
		fmt.Fprintf(&categories, "- %s: %s (%s%%)",
			row.Category, row.Amount.StringFixed(2), row.Percentage.StringFixed(2))
	}

	return fmt.Sprintf(promptTemplate,
		summary.Month,
		summary.Year,
		summary.Income.StringFixed(2),
		summary.Expense.StringFixed(2),
		summary.Balance.StringFixed(2),
		summary.ExpensePercentage.StringFixed(2),
		summary.FixedExpense.StringFixed(2),
		summary.VariableExpense.StringFixed(2),
		categories.String(),
	)
}
