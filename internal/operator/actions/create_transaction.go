package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

var _ IAction = (*CreateTransaction)(nil)

// CreateTransaction inserts one ledger entry. CreatedID is set once Perform succeeds.
type CreateTransaction struct {
	Create    transaction.TransactionCreate
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer Writer) error {
	id, err := writer.InsertTransaction(ctx, &t.Create)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
