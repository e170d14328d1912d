package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/storage/transaction"
)

var _ IAction = (*UpdateTransaction)(nil)

type UpdateTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update transaction.TransactionUpdate
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer Writer) error {
	return writer.UpdateTransaction(ctx, t.UserID, t.ID, &t.Update)
}
