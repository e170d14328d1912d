package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/handlers/httperr"
	"github.com/carson-networks/cashmind/internal/logging"
	"github.com/carson-networks/cashmind/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Name        string  `json:"name" minLength:"1" maxLength:"200" doc:"Name of the transaction"`
	Amount      string  `json:"amount" minLength:"1" doc:"Positive decimal amount"`
	Kind        string  `json:"kind" enum:"income,expense" doc:"Direction of the transaction"`
	Recurrence  string  `json:"recurrence" enum:"fixed,variable" doc:"Fixed monthly commitment or occasional"`
	Category    string  `json:"category" minLength:"1" maxLength:"100" doc:"Category, stored lower-cased"`
	Date        string  `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free text note"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, tx service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records an income or expense for the authenticated user.",
		Tags:        []string{"Transactions"},
		Security:    security,
	}, h.handle)
}

// parseCreateTransactionInput parses the fields huma's schema cannot check.
// A missing date is left zero so the service applies today.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		if date, err = parseDate("date", input.Body.Date); err != nil {
			return service.Transaction{}, err
		}
	}

	return service.Transaction{
		Name:        input.Body.Name,
		Amount:      amount,
		Kind:        analytics.Kind(input.Body.Kind),
		Recurrence:  analytics.Recurrence(input.Body.Recurrence),
		Category:    input.Body.Category,
		Date:        date,
		Description: input.Body.Description,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.TransactionService.CreateTransaction(ctx, userID, tx)
	if err != nil {
		return nil, httperr.From(err, "failed to create transaction")
	}

	logging.GetLogData(ctx).AddData("transactionID", id.String())
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
