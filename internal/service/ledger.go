package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/logging"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

// ledgerLoader fetches a user's transactions for the aggregations, bounded by timeout.
type ledgerLoader struct {
	reader  LedgerReader
	timeout time.Duration
}

func (l ledgerLoader) load(ctx context.Context, filter *transaction.TransactionFilter) ([]analytics.Transaction, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	endTimer := logging.GetLogData(ctx).AddToExistingTiming("ledgerRead")
	rows, err := l.reader.List(ctx, filter)
	endTimer()
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	ledger := make([]analytics.Transaction, len(rows))
	for i, row := range rows {
		ledger[i] = analyticsFromStorage(row)
	}
	return ledger, nil
}

// period loads the transactions dated in one calendar month.
func (l ledgerLoader) period(ctx context.Context, userID uuid.UUID, month, year int) ([]analytics.Transaction, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return l.load(ctx, &transaction.TransactionFilter{UserID: userID, From: &from, To: &to})
}

// since loads the transactions dated on or after days before now.
func (l ledgerLoader) since(ctx context.Context, userID uuid.UUID, days int, now time.Time) ([]analytics.Transaction, error) {
	y, m, d := now.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
	return l.load(ctx, &transaction.TransactionFilter{UserID: userID, From: &from})
}
