package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/charts"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

const (
	DefaultTrendDays   = 180
	DefaultRecentLimit = 5
)

// DashboardOverview bundles what the dashboard shows on first load.
type DashboardOverview struct {
	Summary   analytics.PeriodSummary
	Breakdown analytics.CategoryBreakdown
	Trend     []analytics.MonthlyTrendPoint
}

// DashboardService computes dashboard aggregates from the user's ledger.
type DashboardService struct {
	ledger ledgerLoader
	clock  Clock
}

func NewDashboardService(reader LedgerReader, ledgerTimeout time.Duration, clock Clock) *DashboardService {
	return &DashboardService{
		ledger: ledgerLoader{reader: reader, timeout: ledgerTimeout},
		clock:  clock,
	}
}

// CurrentPeriod returns the month and year of "now".
func (s *DashboardService) CurrentPeriod() (int, int) {
	now := s.clock()
	return int(now.Month()), now.Year()
}

func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID, month, year int) (analytics.PeriodSummary, error) {
	if err := analytics.ValidatePeriod(month); err != nil {
		return analytics.PeriodSummary{}, err
	}

	ledger, err := s.ledger.period(ctx, userID, month, year)
	if err != nil {
		return analytics.PeriodSummary{}, err
	}
	return analytics.Summarize(ledger, month, year)
}

func (s *DashboardService) Categories(ctx context.Context, userID uuid.UUID, month, year int) (analytics.CategoryBreakdown, error) {
	if err := analytics.ValidatePeriod(month); err != nil {
		return nil, err
	}

	ledger, err := s.ledger.period(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	return analytics.BreakdownByCategory(ledger, month, year)
}

func (s *DashboardService) Trend(ctx context.Context, userID uuid.UUID, days int) ([]analytics.MonthlyTrendPoint, error) {
	if days <= 0 {
		return nil, analytics.ErrInvalidWindow
	}

	now := s.clock()
	ledger, err := s.ledger.since(ctx, userID, days, now)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyTrend(ledger, days, now)
}

// Recent returns the user's latest transactions. Only limit+1 rows are read
// from the ledger since it already returns them in presentation order.
func (s *DashboardService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]analytics.Transaction, error) {
	if limit <= 0 {
		return nil, analytics.ErrInvalidLimit
	}

	ledger, err := s.ledger.load(ctx, &transaction.TransactionFilter{UserID: userID, Limit: limit})
	if err != nil {
		return nil, err
	}
	return analytics.RecentTransactions(ledger, limit)
}

func (s *DashboardService) Insights(ctx context.Context, userID uuid.UUID) ([]analytics.Insight, error) {
	now := s.clock()
	ledger, err := s.ledger.since(ctx, userID, analytics.InsightWindowDays, now)
	if err != nil {
		return nil, err
	}
	return analytics.Insights(ledger, now), nil
}

// Overview reads the period and the trend window concurrently.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID, month, year, days int) (*DashboardOverview, error) {
	if err := analytics.ValidatePeriod(month); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, analytics.ErrInvalidWindow
	}

	now := s.clock()
	var periodLedger, trendLedger []analytics.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		periodLedger, err = s.ledger.period(gctx, userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		trendLedger, err = s.ledger.since(gctx, userID, days, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &DashboardOverview{}
	var err error
	if overview.Summary, err = analytics.Summarize(periodLedger, month, year); err != nil {
		return nil, err
	}
	if overview.Breakdown, err = analytics.BreakdownByCategory(periodLedger, month, year); err != nil {
		return nil, err
	}
	if overview.Trend, err = analytics.MonthlyTrend(trendLedger, days, now); err != nil {
		return nil, err
	}
	return overview, nil
}

// TrendChart renders Trend as a PNG.
func (s *DashboardService) TrendChart(ctx context.Context, userID uuid.UUID, days int) ([]byte, error) {
	points, err := s.Trend(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	png, err := charts.RenderTrend(points)
	if err != nil {
		return nil, fmt.Errorf("trend chart: %w", err)
	}
	return png, nil
}

// CategoryChart renders Categories as a PNG.
func (s *DashboardService) CategoryChart(ctx context.Context, userID uuid.UUID, month, year int) ([]byte, error) {
	breakdown, err := s.Categories(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	png, err := charts.RenderBreakdown(breakdown)
	if err != nil {
		return nil, fmt.Errorf("category chart: %w", err)
	}
	return png, nil
}
