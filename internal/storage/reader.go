package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashmind/internal/storage/transaction"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

type Reader struct {
	Users        *user.Reader
	Transactions *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:        user.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
