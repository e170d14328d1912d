package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/logging"
)

// AnalysisService asks the narrative advisor about one month of the ledger.
type AnalysisService struct {
	ledger         ledgerLoader
	advisor        NarrativeAdvisor
	advisorTimeout time.Duration
	logger         *logrus.Logger
}

func NewAnalysisService(reader LedgerReader, narrative NarrativeAdvisor, ledgerTimeout, advisorTimeout time.Duration, logger *logrus.Logger) *AnalysisService {
	return &AnalysisService{
		ledger:         ledgerLoader{reader: reader, timeout: ledgerTimeout},
		advisor:        narrative,
		advisorTimeout: advisorTimeout,
		logger:         logger,
	}
}

// Available reports whether a text generator is configured.
func (s *AnalysisService) Available() bool {
	return s.advisor.Available()
}

// Analyze returns narrative advice for the month. Only period validation and
// ledger read failures are returned as errors; every advisor outcome is a result.
func (s *AnalysisService) Analyze(ctx context.Context, userID uuid.UUID, month, year int) (advisor.NarrativeResult, error) {
	if err := analytics.ValidatePeriod(month); err != nil {
		return advisor.NarrativeResult{}, err
	}

	ledger, err := s.ledger.period(ctx, userID, month, year)
	if err != nil {
		return advisor.NarrativeResult{}, err
	}

	summary, err := analytics.Summarize(ledger, month, year)
	if err != nil {
		return advisor.NarrativeResult{}, err
	}
	breakdown, err := analytics.BreakdownByCategory(ledger, month, year)
	if err != nil {
		return advisor.NarrativeResult{}, err
	}

	adviseCtx, cancel := context.WithTimeout(ctx, s.advisorTimeout)
	defer cancel()

	logData := logging.GetLogData(ctx)
	endTimer := logData.AddTiming("advisor")
	result := s.advisor.Advise(adviseCtx, summary, breakdown)
	endTimer()
	logData.AddData("advisorStatus", string(result.Status))

	s.logger.WithFields(logrus.Fields{
		"userID": userID,
		"month":  month,
		"year":   year,
		"status": result.Status,
	}).Debug("AnalysisService.Analyze")
	return result, nil
}
