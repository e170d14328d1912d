package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/service"
)

// DateLayout is the wire format of transaction dates.
const DateLayout = time.DateOnly

var security = []map[string][]string{{auth.SecurityScheme: {}}}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	Name        string  `json:"name" doc:"Name of the transaction"`
	Amount      string  `json:"amount" doc:"Decimal amount, always positive"`
	Kind        string  `json:"kind" enum:"income,expense" doc:"Direction of the transaction"`
	Recurrence  string  `json:"recurrence" enum:"fixed,variable" doc:"Fixed monthly commitment or occasional"`
	Category    string  `json:"category" doc:"Lower-cased category"`
	Date        string  `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Description *string `json:"description,omitempty" doc:"Free text note"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Name:        tx.Name,
		Amount:      tx.Amount.StringFixed(2),
		Kind:        string(tx.Kind),
		Recurrence:  string(tx.Recurrence),
		Category:    tx.Category,
		Date:        tx.Date.Format(DateLayout),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected YYYY-MM-DD", err)
	}
	return date, nil
}
