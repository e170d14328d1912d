// Package dashboard serves the aggregate views of a user's ledger.
package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/service"
)

var security = []map[string][]string{{auth.SecurityScheme: {}}}

// dashboardService is what the dashboard endpoints need from the service layer.
type dashboardService interface {
	CurrentPeriod() (int, int)
	Summary(ctx context.Context, userID uuid.UUID, month, year int) (analytics.PeriodSummary, error)
	Categories(ctx context.Context, userID uuid.UUID, month, year int) (analytics.CategoryBreakdown, error)
	Trend(ctx context.Context, userID uuid.UUID, days int) ([]analytics.MonthlyTrendPoint, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]analytics.Transaction, error)
	Insights(ctx context.Context, userID uuid.UUID) ([]analytics.Insight, error)
	Overview(ctx context.Context, userID uuid.UUID, month, year, days int) (*service.DashboardOverview, error)
	TrendChart(ctx context.Context, userID uuid.UUID, days int) ([]byte, error)
	CategoryChart(ctx context.Context, userID uuid.UUID, month, year int) ([]byte, error)
}

// Handler serves /v1/dashboard/*.
type Handler struct {
	DashboardService dashboardService
}

// NewHandler creates a new dashboard Handler.
func NewHandler(svc dashboardService) *Handler {
	return &Handler{DashboardService: svc}
}

func operation(id, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      http.MethodGet,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"Dashboard"},
		Security:    security,
	}
}

// Register registers every dashboard endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, operation("dashboard-summary", "/v1/dashboard/summary", "Monthly summary"), h.summary)
	huma.Register(api, operation("dashboard-categories", "/v1/dashboard/categories", "Expenses by category"), h.categories)
	huma.Register(api, operation("dashboard-trend", "/v1/dashboard/trend", "Monthly trend"), h.trend)
	huma.Register(api, operation("dashboard-recent", "/v1/dashboard/recent", "Recent transactions"), h.recent)
	huma.Register(api, operation("dashboard-insights", "/v1/dashboard/insights", "Spending insights"), h.insights)
	huma.Register(api, operation("dashboard-overview", "/v1/dashboard/overview", "Summary, categories and trend"), h.overview)
	huma.Register(api, operation("dashboard-trend-chart", "/v1/dashboard/trend.png", "Trend chart"), h.trendChart)
	huma.Register(api, operation("dashboard-categories-chart", "/v1/dashboard/categories.png", "Category chart"), h.categoryChart)
}

// PeriodInput selects a calendar month; zero values mean the current month or year.
type PeriodInput struct {
	Month int `query:"month" doc:"Calendar month (1-12), defaults to the current month"`
	Year  int `query:"year" doc:"Calendar year, defaults to the current year"`
}

func (h *Handler) resolvePeriod(in PeriodInput) (int, int) {
	month, year := h.DashboardService.CurrentPeriod()
	if in.Month != 0 {
		month = in.Month
	}
	if in.Year != 0 {
		year = in.Year
	}
	return month, year
}
