package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/charts"
	"github.com/carson-networks/cashmind/internal/handlers/handlertest"
	"github.com/carson-networks/cashmind/internal/service"
)

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) CurrentPeriod() (int, int) {
	return 7, 2025
}

func (m *mockDashboardService) Summary(ctx context.Context, userID uuid.UUID, month, year int) (analytics.PeriodSummary, error) {
	args := m.Called(ctx, userID, month, year)
	return args.Get(0).(analytics.PeriodSummary), args.Error(1)
}

func (m *mockDashboardService) Categories(ctx context.Context, userID uuid.UUID, month, year int) (analytics.CategoryBreakdown, error) {
	args := m.Called(ctx, userID, month, year)
	breakdown, _ := args.Get(0).(analytics.CategoryBreakdown)
	return breakdown, args.Error(1)
}

func (m *mockDashboardService) Trend(ctx context.Context, userID uuid.UUID, days int) ([]analytics.MonthlyTrendPoint, error) {
	args := m.Called(ctx, userID, days)
	points, _ := args.Get(0).([]analytics.MonthlyTrendPoint)
	return points, args.Error(1)
}

func (m *mockDashboardService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]analytics.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	txs, _ := args.Get(0).([]analytics.Transaction)
	return txs, args.Error(1)
}

func (m *mockDashboardService) Insights(ctx context.Context, userID uuid.UUID) ([]analytics.Insight, error) {
	args := m.Called(ctx, userID)
	insights, _ := args.Get(0).([]analytics.Insight)
	return insights, args.Error(1)
}

func (m *mockDashboardService) Overview(ctx context.Context, userID uuid.UUID, month, year, days int) (*service.DashboardOverview, error) {
	args := m.Called(ctx, userID, month, year, days)
	overview, _ := args.Get(0).(*service.DashboardOverview)
	return overview, args.Error(1)
}

func (m *mockDashboardService) TrendChart(ctx context.Context, userID uuid.UUID, days int) ([]byte, error) {
	args := m.Called(ctx, userID, days)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

func (m *mockDashboardService) CategoryChart(ctx context.Context, userID uuid.UUID, month, year int) ([]byte, error) {
	args := m.Called(ctx, userID, month, year)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

func newTestAPI(t *testing.T) (handlertest.API, *mockDashboardService) {
	t.Helper()
	svc := new(mockDashboardService)
	api := handlertest.New(t)
	NewHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api, svc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func juneSummary() analytics.PeriodSummary {
	return analytics.PeriodSummary{
		Month:             6,
		Year:              2024,
		Income:            dec("5000"),
		Expense:           dec("1650"),
		Balance:           dec("3350"),
		FixedExpense:      dec("1200"),
		VariableExpense:   dec("450"),
		ExpensePercentage: dec("33"),
		TransactionCount:  3,
	}
}

func TestSummary(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Summary", mock.Anything, api.UserID, 6, 2024).Return(juneSummary(), nil)

	resp := api.Get("/v1/dashboard/summary?month=6&year=2024", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Summary{
		Month:             6,
		Year:              2024,
		Income:            "5000.00",
		Expense:           "1650.00",
		Balance:           "3350.00",
		FixedExpense:      "1200.00",
		VariableExpense:   "450.00",
		ExpensePercentage: "33.00",
		TransactionCount:  3,
	}, body)
}

func TestSummary_DefaultsToCurrentPeriod(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Summary", mock.Anything, api.UserID, 7, 2025).Return(analytics.PeriodSummary{Month: 7, Year: 2025}, nil)

	resp := api.Get("/v1/dashboard/summary", api.AuthHeader())
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSummary_InvalidPeriod(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Summary", mock.Anything, api.UserID, 13, 2024).Return(analytics.PeriodSummary{}, analytics.ErrInvalidPeriod)

	resp := api.Get("/v1/dashboard/summary?month=13&year=2024", api.AuthHeader())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSummary_Unauthenticated(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/v1/dashboard/summary")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCategories(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Categories", mock.Anything, api.UserID, 6, 2024).Return(analytics.CategoryBreakdown{
		{Category: "moradia", Amount: dec("1200"), Percentage: dec("72.73"), Count: 1},
		{Category: "alimentação", Amount: dec("450"), Percentage: dec("27.27"), Count: 1},
	}, nil)

	resp := api.Get("/v1/dashboard/categories?month=6&year=2024", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body CategoriesOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, "1650.00", body.Body.Total)
	require.Len(t, body.Body.Categories, 2)
	assert.Equal(t, CategoryAmount{Category: "moradia", Amount: "1200.00", Percentage: "72.73", Count: 1}, body.Body.Categories[0])
}

func TestTrend_DefaultWindow(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Trend", mock.Anything, api.UserID, 180).Return([]analytics.MonthlyTrendPoint{
		{Year: 2025, Month: 6, Income: dec("3000"), Expense: dec("1000.5"), Balance: dec("1999.5")},
	}, nil)

	resp := api.Get("/v1/dashboard/trend", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body TrendOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, 180, body.Body.Days)
	assert.Equal(t, []TrendPoint{{Year: 2025, Month: 6, Income: "3000.00", Expense: "1000.50", Balance: "1999.50"}}, body.Body.Points)
}

func TestTrend_InvalidWindow(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Trend", mock.Anything, api.UserID, -1).Return(nil, analytics.ErrInvalidWindow)

	resp := api.Get("/v1/dashboard/trend?days=-1", api.AuthHeader())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRecent(t *testing.T) {
	api, svc := newTestAPI(t)
	id := uuid.Must(uuid.NewV4())
	svc.On("Recent", mock.Anything, api.UserID, 5).Return([]analytics.Transaction{{
		ID:         id,
		Name:       "Rent",
		Amount:     dec("1200"),
		Kind:       analytics.KindExpense,
		Recurrence: analytics.RecurrenceFixed,
		Category:   "moradia",
		Date:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}}, nil)

	resp := api.Get("/v1/dashboard/recent", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body RecentOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Transactions, 1)
	assert.Equal(t, id.String(), body.Body.Transactions[0].ID)
	assert.Equal(t, "2024-06-02", body.Body.Transactions[0].Date)
}

func TestRecent_InvalidLimit(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Recent", mock.Anything, api.UserID, 0).Return(nil, analytics.ErrInvalidLimit)

	resp := api.Get("/v1/dashboard/recent?limit=0", api.AuthHeader())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestInsights(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Insights", mock.Anything, api.UserID).Return([]analytics.Insight{
		{Kind: analytics.InsightTopCategory, Text: "top", Category: "moradia", Amount: dec("3600")},
		{Kind: analytics.InsightSpendingIncrease, Text: "up", ChangePercent: dec("15")},
	}, nil)

	resp := api.Get("/v1/dashboard/insights", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body InsightsOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	require.Len(t, body.Body.Insights, 2)

	top := body.Body.Insights[0]
	assert.Equal(t, "top_category", top.Kind)
	require.NotNil(t, top.Amount)
	assert.Equal(t, "3600.00", *top.Amount)
	assert.Nil(t, top.ChangePercent)

	change := body.Body.Insights[1]
	require.NotNil(t, change.ChangePercent)
	assert.Equal(t, "15.0", *change.ChangePercent)
}

func TestOverview(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Overview", mock.Anything, api.UserID, 6, 2024, 90).Return(&service.DashboardOverview{
		Summary:   juneSummary(),
		Breakdown: analytics.CategoryBreakdown{{Category: "moradia", Amount: dec("1200"), Percentage: dec("100"), Count: 1}},
		Trend:     []analytics.MonthlyTrendPoint{{Year: 2024, Month: 6, Income: dec("5000"), Expense: dec("1650"), Balance: dec("3350")}},
	}, nil)

	resp := api.Get("/v1/dashboard/overview?month=6&year=2024&days=90", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body OverviewOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, "3350.00", body.Body.Summary.Balance)
	assert.Len(t, body.Body.Categories, 1)
	assert.Len(t, body.Body.Trend, 1)
}

func TestOverview_ServiceError(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Overview", mock.Anything, api.UserID, 7, 2025, 180).Return(nil, errors.New("database unavailable"))

	resp := api.Get("/v1/dashboard/overview", api.AuthHeader())
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestTrendChart(t *testing.T) {
	api, svc := newTestAPI(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	svc.On("TrendChart", mock.Anything, api.UserID, 365).Return(png, nil)

	resp := api.Get("/v1/dashboard/trend.png?days=365", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, png, resp.Body.Bytes())
}

func TestCategoryChart_NoExpenses(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("CategoryChart", mock.Anything, api.UserID, 7, 2025).Return(nil, charts.ErrNoExpenses)

	resp := api.Get("/v1/dashboard/categories.png", api.AuthHeader())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
