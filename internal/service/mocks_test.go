package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/operator/actions"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockLedger) FindByID(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockLedger) Categories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

// mockOperator records the actions it receives; tests use Run to fill CreatedID.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) Available() bool {
	return m.Called().Bool(0)
}

func (m *mockAdvisor) Advise(ctx context.Context, summary analytics.PeriodSummary, breakdown analytics.CategoryBreakdown) advisor.NarrativeResult {
	args := m.Called(ctx, summary, breakdown)
	return args.Get(0).(advisor.NarrativeResult)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
