package dashboard

import (
	"context"

	"github.com/carson-networks/cashmind/internal/handlers/httperr"
	"github.com/carson-networks/cashmind/internal/logging"
)

type SummaryOutput struct {
	Body Summary
}

func (h *Handler) summary(ctx context.Context, input *PeriodInput) (*SummaryOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	month, year := h.resolvePeriod(*input)
	summary, err := h.DashboardService.Summary(ctx, userID, month, year)
	if err != nil {
		return nil, httperr.From(err, "failed to summarize period")
	}
	return &SummaryOutput{Body: summaryFrom(summary)}, nil
}

type CategoriesOutput struct {
	Body struct {
		Month      int              `json:"month"`
		Year       int              `json:"year"`
		Total      string           `json:"total"`
		Categories []CategoryAmount `json:"categories"`
	}
}

func (h *Handler) categories(ctx context.Context, input *PeriodInput) (*CategoriesOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	month, year := h.resolvePeriod(*input)
	breakdown, err := h.DashboardService.Categories(ctx, userID, month, year)
	if err != nil {
		return nil, httperr.From(err, "failed to break down expenses")
	}

	out := &CategoriesOutput{}
	out.Body.Month, out.Body.Year = month, year
	out.Body.Total = money(breakdown.Total())
	out.Body.Categories = breakdownFrom(breakdown)
	return out, nil
}

// TrendInput sizes the trend window.
type TrendInput struct {
	Days int `query:"days" default:"180" doc:"Window size in days"`
}

type TrendOutput struct {
	Body struct {
		Days   int          `json:"days"`
		Points []TrendPoint `json:"points"`
	}
}

func (h *Handler) trend(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	points, err := h.DashboardService.Trend(ctx, userID, input.Days)
	if err != nil {
		return nil, httperr.From(err, "failed to compute trend")
	}

	out := &TrendOutput{}
	out.Body.Days = input.Days
	out.Body.Points = trendFrom(points)
	return out, nil
}

type RecentInput struct {
	Limit int `query:"limit" default:"5" doc:"Number of transactions"`
}

type RecentOutput struct {
	Body struct {
		Transactions []RecentTransaction `json:"transactions"`
	}
}

func (h *Handler) recent(ctx context.Context, input *RecentInput) (*RecentOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := h.DashboardService.Recent(ctx, userID, input.Limit)
	if err != nil {
		return nil, httperr.From(err, "failed to load recent transactions")
	}

	out := &RecentOutput{}
	out.Body.Transactions = recentFrom(txs)
	return out, nil
}

type InsightsOutput struct {
	Body struct {
		Insights []Insight `json:"insights"`
	}
}

func (h *Handler) insights(ctx context.Context, _ *struct{}) (*InsightsOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	insights, err := h.DashboardService.Insights(ctx, userID)
	if err != nil {
		return nil, httperr.From(err, "failed to compute insights")
	}

	logging.GetLogData(ctx).AddData("insightCount", len(insights))
	out := &InsightsOutput{}
	out.Body.Insights = insightsFrom(insights)
	return out, nil
}

type OverviewInput struct {
	PeriodInput
	TrendInput
}

type OverviewOutput struct {
	Body struct {
		Summary    Summary          `json:"summary"`
		Categories []CategoryAmount `json:"categories"`
		Trend      []TrendPoint     `json:"trend"`
	}
}

func (h *Handler) overview(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	month, year := h.resolvePeriod(input.PeriodInput)
	overview, err := h.DashboardService.Overview(ctx, userID, month, year, input.Days)
	if err != nil {
		return nil, httperr.From(err, "failed to build overview")
	}

	out := &OverviewOutput{}
	out.Body.Summary = summaryFrom(overview.Summary)
	out.Body.Categories = breakdownFrom(overview.Breakdown)
	out.Body.Trend = trendFrom(overview.Trend)
	return out, nil
}

// ImageOutput is a rendered PNG.
type ImageOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *Handler) trendChart(ctx context.Context, input *TrendInput) (*ImageOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	png, err := h.DashboardService.TrendChart(ctx, userID, input.Days)
	if err != nil {
		return nil, httperr.From(err, "failed to render trend chart")
	}
	return &ImageOutput{ContentType: "image/png", Body: png}, nil
}

func (h *Handler) categoryChart(ctx context.Context, input *PeriodInput) (*ImageOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	month, year := h.resolvePeriod(*input)
	png, err := h.DashboardService.CategoryChart(ctx, userID, month, year)
	if err != nil {
		return nil, httperr.From(err, "failed to render category chart")
	}
	return &ImageOutput{ContentType: "image/png", Body: png}, nil
}
