package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashmind/internal/storage/transaction"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

type Writer struct {
	tx          bob.Tx
	User        *user.Writer
	Transaction *transaction.Writer
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		User:        user.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}

func (w *Writer) InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	return w.Transaction.Insert(ctx, create)
}

func (w *Writer) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, update *transaction.TransactionUpdate) error {
	return w.Transaction.Update(ctx, userID, id, update)
}

func (w *Writer) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return w.Transaction.Delete(ctx, userID, id)
}

func (w *Writer) InsertUser(ctx context.Context, create *user.UserCreate) (uuid.UUID, error) {
	return w.User.Insert(ctx, create)
}
