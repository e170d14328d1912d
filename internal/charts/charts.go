// Package charts renders dashboard aggregates as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/carson-networks/cashmind/internal/analytics"
)

var (
	// ErrNotEnoughPoints is returned when a trend has fewer than two months to plot.
	ErrNotEnoughPoints = errors.New("charts: at least two trend points are required")
	// ErrNoExpenses is returned when a breakdown has nothing positive to plot.
	ErrNoExpenses = errors.New("charts: no expenses to plot")
)

const (
	trendWidth  = 1200
	trendHeight = 600
	pieSize     = 800
)

var padding = chart.Style{
	Padding: chart.Box{
		Top:    50,
		Left:   50,
		Right:  50,
		Bottom: 50,
	},
	FillColor: chart.ColorWhite,
}

func moneyFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// RenderTrend draws income, expense and balance lines, one point per month.
func RenderTrend(points []analytics.MonthlyTrendPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, ErrNotEnoughPoints
	}

	xValues := make([]time.Time, len(points))
	income := make([]float64, len(points))
	expense := make([]float64, len(points))
	balance := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		income[i] = p.Income.InexactFloat64()
		expense[i] = p.Expense.InexactFloat64()
		balance[i] = p.Balance.InexactFloat64()
	}

	graph := chart.Chart{
		Title:      "Monthly trend",
		Width:      trendWidth,
		Height:     trendHeight,
		Background: padding,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: moneyFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: income,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Expense",
				XValues: xValues,
				YValues: expense,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balance,
				Style: chart.Style{
					StrokeColor:     chart.ColorBlue,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderBreakdown draws the month's expense categories as a pie chart.
// Categories with a zero amount are left out.
func RenderBreakdown(breakdown analytics.CategoryBreakdown) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, row := range breakdown {
		if !row.Amount.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s%%)", row.Category, row.Amount.StringFixed(2), row.Percentage.StringFixed(1)),
			Value: row.Amount.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return nil, ErrNoExpenses
	}

	pie := chart.PieChart{
		Title:      "Expenses by category",
		Width:      pieSize,
		Height:     pieSize,
		Values:     values,
		Background: padding,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
