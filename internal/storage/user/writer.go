package user

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a user and returns the generated id. A duplicate email
// yields ErrEmailTaken.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(tableName, "full_name", "email", "password_hash"),
		im.Values(psql.Arg(create.FullName, create.Email, create.PasswordHash)),
		im.Returning(psql.Quote("id")),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return uuid.Nil, ErrEmailTaken
	}
	return id, err
}
