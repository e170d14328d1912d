package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

func newTestAnalysisService(t *testing.T) (*AnalysisService, *mockLedger, *mockAdvisor) {
	t.Helper()
	ledger := &mockLedger{}
	narrative := &mockAdvisor{}
	t.Cleanup(func() {
		ledger.AssertExpectations(t)
		narrative.AssertExpectations(t)
	})
	svc := NewAnalysisService(ledger, narrative, time.Second, 50*time.Millisecond, logrus.New())
	return svc, ledger, narrative
}

func TestAnalyze_PassesAggregatesToAdvisor(t *testing.T) {
	svc, ledger, narrative := newTestAnalysisService(t)
	userID := uuid.Must(uuid.NewV4())

	ledger.On("List", mock.Anything, periodFilter(userID, 6, 2024)).Return(juneRows(), nil)
	narrative.On("Advise",
		mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}),
		mock.MatchedBy(func(s analytics.PeriodSummary) bool {
			return s.Month == 6 && s.Year == 2024 && s.TransactionCount == 3
		}),
		mock.MatchedBy(func(b analytics.CategoryBreakdown) bool {
			return len(b) == 2 && b[0].Category == "moradia"
		}),
	).Return(advisor.NarrativeResult{Status: advisor.StatusOK, Analysis: "Healthy month."})

	result, err := svc.Analyze(context.Background(), userID, 6, 2024)
	require.NoError(t, err)
	assert.Equal(t, advisor.StatusOK, result.Status)
	assert.Equal(t, "Healthy month.", result.Analysis)
}

func TestAnalyze_DegradedResultIsNotAnError(t *testing.T) {
	svc, ledger, narrative := newTestAnalysisService(t)

	ledger.On("List", mock.Anything, mock.Anything).Return([]*transaction.Transaction{}, nil)
	narrative.On("Advise", mock.Anything, mock.Anything, mock.Anything).
		Return(advisor.NarrativeResult{Status: advisor.StatusUnavailable})

	result, err := svc.Analyze(context.Background(), uuid.Must(uuid.NewV4()), 6, 2024)
	assert.NoError(t, err)
	assert.Equal(t, advisor.StatusUnavailable, result.Status)
	assert.ErrorIs(t, result.Err(), advisor.ErrUnavailable)
}

func TestAnalyze_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestAnalysisService(t)

	_, err := svc.Analyze(context.Background(), uuid.Must(uuid.NewV4()), 13, 2024)
	assert.ErrorIs(t, err, analytics.ErrInvalidPeriod)
}

func TestAnalyze_LedgerError(t *testing.T) {
	svc, ledger, _ := newTestAnalysisService(t)

	ledger.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	_, err := svc.Analyze(context.Background(), uuid.Must(uuid.NewV4()), 6, 2024)
	assert.ErrorContains(t, err, "database unavailable")
}

func TestAnalysisAvailable(t *testing.T) {
	svc, _, narrative := newTestAnalysisService(t)

	narrative.On("Available").Return(false)
	assert.False(t, svc.Available())
}
