package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

var _ IAction = (*DeleteTransaction)(nil)

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer Writer) error {
	return writer.DeleteTransaction(ctx, t.UserID, t.ID)
}
