package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/storage/transaction"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

// Writer is the part of an open database transaction that actions write through.
type Writer interface {
	InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error)
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, update *transaction.TransactionUpdate) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
	InsertUser(ctx context.Context, create *user.UserCreate) (uuid.UUID, error)
}

type IAction interface {
	Perform(ctx context.Context, writer Writer) error
}
