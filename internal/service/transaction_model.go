package service

import (
	"time"

	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Kind        analytics.Kind
	Recurrence  analytics.Recurrence
	Category    string
	Date        time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionPatch lists the fields to change; nil pointers are left alone.
// Description distinguishes "leave alone" (unset) from "clear" (null).
type TransactionPatch struct {
	Name        *string
	Amount      *decimal.Decimal
	Kind        *analytics.Kind
	Recurrence  *analytics.Recurrence
	Category    *string
	Date        *time.Time
	Description omitnull.Val[string]
}

// TransactionListFilter narrows a transaction listing. Month requires Year;
// Year alone selects the whole year.
type TransactionListFilter struct {
	Month    *int
	Year     *int
	Kind     *analytics.Kind
	Category *string
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Name:        row.Name,
		Amount:      row.Amount,
		Kind:        analytics.Kind(row.Kind),
		Recurrence:  analytics.Recurrence(row.Recurrence),
		Category:    row.Category,
		Date:        row.TransactionDate,
		Description: row.Description.Ptr(),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func analyticsFromStorage(row *transaction.Transaction) analytics.Transaction {
	return analytics.Transaction{
		ID:         row.ID,
		Name:       row.Name,
		Amount:     row.Amount,
		Kind:       analytics.Kind(row.Kind),
		Recurrence: analytics.Recurrence(row.Recurrence),
		Category:   row.Category,
		Date:       row.TransactionDate,
		CreatedAt:  row.CreatedAt,
	}
}
