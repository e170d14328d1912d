package transaction

import (
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction matches both the id and the owner.
var ErrNotFound = errors.New("transaction not found")

const tableName = "transactions"

var columns = []string{
	"id",
	"user_id",
	"name",
	"amount",
	"kind",
	"recurrence",
	"category",
	"transaction_date",
	"description",
	"created_at",
	"updated_at",
}

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID        `db:"id"`
	UserID          uuid.UUID        `db:"user_id"`
	Name            string           `db:"name"`
	Amount          decimal.Decimal  `db:"amount"`
	Kind            string           `db:"kind"`
	Recurrence      string           `db:"recurrence"`
	Category        string           `db:"category"`
	TransactionDate time.Time        `db:"transaction_date"`
	Description     null.Val[string] `db:"description"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Name            string
	Amount          decimal.Decimal
	Kind            string
	Recurrence      string
	Category        string
	TransactionDate time.Time
	Description     null.Val[string]
}

// TransactionUpdate carries the columns to change. Unset fields are left alone;
// Description can also be set to null.
type TransactionUpdate struct {
	Name            omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	Kind            omit.Val[string]
	Recurrence      omit.Val[string]
	Category        omit.Val[string]
	TransactionDate omit.Val[time.Time]
	Description     omitnull.Val[string]
}

// Empty reports whether the update would change nothing.
func (u TransactionUpdate) Empty() bool {
	return !u.Name.IsSet() &&
		!u.Amount.IsSet() &&
		!u.Kind.IsSet() &&
		!u.Recurrence.IsSet() &&
		!u.Category.IsSet() &&
		!u.TransactionDate.IsSet() &&
		u.Description.IsUnset()
}

// TransactionFilter specifies filters for listing one user's transactions.
// From is inclusive and To exclusive; nil pointers disable a filter and a
// zero Limit returns every match.
type TransactionFilter struct {
	UserID          uuid.UUID
	From            *time.Time
	To              *time.Time
	Kind            *string
	Category        *string
	MaxCreationTime *time.Time
	Limit           int
	Offset          int
}
