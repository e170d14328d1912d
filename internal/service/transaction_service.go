package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/operator/actions"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader   LedgerReader
	operator ActionProcessor
	clock    Clock
	logger   *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader LedgerReader, operator ActionProcessor, clock Clock, logger *logrus.Logger) *TransactionService {
	return &TransactionService{reader: reader, operator: operator, clock: clock, logger: logger}
}

// CreateTransaction validates and records a transaction for userID and returns its ID.
// A zero Date means today.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, tx Transaction) (uuid.UUID, error) {
	tx.Name = strings.TrimSpace(tx.Name)
	tx.Category = analytics.NormalizeCategory(tx.Category)
	if tx.Date.IsZero() {
		tx.Date = s.clock()
	}
	tx.Date = dateOnly(tx.Date)

	if err := validateTransaction(tx); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{
		Create: transaction.TransactionCreate{
			UserID:          userID,
			Name:            tx.Name,
			Amount:          tx.Amount,
			Kind:            string(tx.Kind),
			Recurrence:      string(tx.Recurrence),
			Category:        tx.Category,
			TransactionDate: tx.Date,
			Description:     null.FromPtr(tx.Description),
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"userID":        userID,
		"transactionID": action.CreatedID,
	}).Debug("TransactionService.CreateTransaction")
	return action.CreatedID, nil
}

// GetTransaction returns one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.reader.FindByID(ctx, userID, id)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, listFilter TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = min(cursor.Limit, maxLimit)
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	filter := &transaction.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}
	if err := s.applyListFilter(filter, listFilter); err != nil {
		return nil, nil, err
	}

	queryTime := s.clock()
	rows, err := s.reader.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := queryTime
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

func (s *TransactionService) applyListFilter(filter *transaction.TransactionFilter, listFilter TransactionListFilter) error {
	switch {
	case listFilter.Month != nil:
		if err := analytics.ValidatePeriod(*listFilter.Month); err != nil {
			return err
		}
		year := s.clock().Year()
		if listFilter.Year != nil {
			year = *listFilter.Year
		}
		from := time.Date(year, time.Month(*listFilter.Month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		filter.From, filter.To = &from, &to
	case listFilter.Year != nil:
		from := time.Date(*listFilter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0)
		filter.From, filter.To = &from, &to
	}

	if listFilter.Kind != nil {
		if !listFilter.Kind.Valid() {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, *listFilter.Kind)
		}
		kind := string(*listFilter.Kind)
		filter.Kind = &kind
	}
	if listFilter.Category != nil {
		category := analytics.NormalizeCategory(*listFilter.Category)
		filter.Category = &category
	}
	return nil
}

// UpdateTransaction applies patch to one of the user's transactions.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) error {
	update := transaction.TransactionUpdate{
		Amount:      omit.FromPtr(patch.Amount),
		Description: patch.Description,
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidTransaction)
		}
		update.Name = omit.From(name)
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransaction)
	}
	if patch.Kind != nil {
		if !patch.Kind.Valid() {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, *patch.Kind)
		}
		update.Kind = omit.From(string(*patch.Kind))
	}
	if patch.Recurrence != nil {
		if !patch.Recurrence.Valid() {
			return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidTransaction, *patch.Recurrence)
		}
		update.Recurrence = omit.From(string(*patch.Recurrence))
	}
	if patch.Category != nil {
		category := analytics.NormalizeCategory(*patch.Category)
		if category == "" {
			return fmt.Errorf("%w: category is required", ErrInvalidTransaction)
		}
		update.Category = omit.From(category)
	}
	if patch.Date != nil {
		update.TransactionDate = omit.From(dateOnly(*patch.Date))
	}

	if update.Empty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidTransaction)
	}

	err := s.operator.Process(ctx, &actions.UpdateTransaction{UserID: userID, ID: id, Update: update})
	if errors.Is(err, transaction.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id})
	if errors.Is(err, transaction.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateTransaction(tx Transaction) error {
	switch {
	case tx.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidTransaction)
	case !tx.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransaction)
	case !tx.Kind.Valid():
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, tx.Kind)
	case !tx.Recurrence.Valid():
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidTransaction, tx.Recurrence)
	case tx.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidTransaction)
	}
	return nil
}

// dateOnly keeps the calendar date of t as midnight UTC, the form stored in the ledger.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
