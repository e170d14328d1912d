package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/operator/actions"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

// LedgerReader is the read side of the Ledger Store.
type LedgerReader interface {
	List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error)
	Categories(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// UserReader looks users up for login and registration.
type UserReader interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// ActionProcessor runs a write action inside a database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// NarrativeAdvisor produces free-form advice for a period.
type NarrativeAdvisor interface {
	Available() bool
	Advise(ctx context.Context, summary analytics.PeriodSummary, breakdown analytics.CategoryBreakdown) advisor.NarrativeResult
}

// Clock returns the current time. Tests replace it to pin "now".
type Clock func() time.Time
