package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) findOne(ctx context.Context, where bob.Expression) (*User, error) {
	query := psql.Select(
		sm.Columns(
			psql.Quote("id"),
			psql.Quote("full_name"),
			psql.Quote("email"),
			psql.Quote("password_hash"),
			psql.Quote("created_at"),
		),
		sm.From(tableName),
		sm.Where(where),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByEmail looks a user up by their already lower-cased email.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}
