// Package analytics computes dashboard aggregates over a user's ledger.
//
// Every function here is a pure fold over an already-loaded slice of
// transactions. Sums are kept in full decimal precision and rounded to two
// places (half away from zero) only when a value is presented.
package analytics

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind is the direction of a transaction.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Recurrence distinguishes fixed monthly commitments from occasional ones.
type Recurrence string

const (
	RecurrenceFixed    Recurrence = "fixed"
	RecurrenceVariable Recurrence = "variable"
)

// Valid reports whether r is a known recurrence.
func (r Recurrence) Valid() bool {
	return r == RecurrenceFixed || r == RecurrenceVariable
}

// Transaction is a ledger entry as seen by the aggregations.
// Amount is always a magnitude; the sign is implied by Kind.
type Transaction struct {
	ID         uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Kind       Kind
	Recurrence Recurrence
	Category   string
	Date       time.Time
	CreatedAt  time.Time
}

// NormalizeCategory returns the canonical grouping key for a category label.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// moneyPlaces is the number of decimal places of every presented amount.
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// percentOf returns part/total*100, or zero when total is not positive.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// inPeriod reports whether date falls in the given calendar month.
func inPeriod(date time.Time, month, year int) bool {
	return date.Year() == year && int(date.Month()) == month
}

// dateOnly truncates t to midnight of its calendar day, keeping its location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDate rebuilds the calendar date of t in loc so that dates stored in
// UTC compare correctly against a caller supplied "now" in another zone.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
