package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/handlers/httperr"
	"github.com/carson-networks/cashmind/internal/service"
)

// UpdateTransactionBody lists the fields to change; absent fields are left alone.
type UpdateTransactionBody struct {
	Name             *string `json:"name,omitempty" minLength:"1" maxLength:"200" doc:"Name of the transaction"`
	Amount           *string `json:"amount,omitempty" doc:"Positive decimal amount"`
	Kind             *string `json:"kind,omitempty" enum:"income,expense" doc:"Direction of the transaction"`
	Recurrence       *string `json:"recurrence,omitempty" enum:"fixed,variable" doc:"Fixed monthly commitment or occasional"`
	Category         *string `json:"category,omitempty" minLength:"1" maxLength:"100" doc:"Category, stored lower-cased"`
	Date             *string `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD)"`
	Description      *string `json:"description,omitempty" maxLength:"500" doc:"Free text note"`
	ClearDescription bool    `json:"clearDescription,omitempty" doc:"Remove the note; ignored when description is set"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch service.TransactionPatch) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Changes the given fields of one of the user's transactions.",
		Tags:          []string{"Transactions"},
		Security:      security,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionPatch, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	body := input.Body
	patch := service.TransactionPatch{
		Name:     body.Name,
		Category: body.Category,
	}

	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return uuid.Nil, service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = &amount
	}
	if body.Kind != nil {
		kind := analytics.Kind(*body.Kind)
		patch.Kind = &kind
	}
	if body.Recurrence != nil {
		recurrence := analytics.Recurrence(*body.Recurrence)
		patch.Recurrence = &recurrence
	}
	if body.Date != nil {
		date, err := parseDate("date", *body.Date)
		if err != nil {
			return uuid.Nil, service.TransactionPatch{}, err
		}
		patch.Date = &date
	}

	switch {
	case body.Description != nil:
		patch.Description = omitnull.From(*body.Description)
	case body.ClearDescription:
		patch.Description = omitnull.FromPtr[string](nil)
	}

	return id, patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.UpdateTransaction(ctx, userID, id, patch); err != nil {
		return nil, httperr.From(err, "failed to update transaction")
	}
	return nil, nil
}
