package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

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

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(tableName,
			"user_id",
			"name",
			"amount",
			"kind",
			"recurrence",
			"category",
			"transaction_date",
			"description",
		),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			create.Amount,
			create.Kind,
			create.Recurrence,
			create.Category,
			create.TransactionDate,
			create.Description,
		)),
		im.Returning(psql.Quote("id")),
	)

	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
}

// Update applies the set fields of update to the user's transaction.
func (w *Writer) Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) error {
	setMods := []bob.Mod[*dialect.UpdateQuery]{
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		setMods = append(setMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Kind.Get(); ok {
		setMods = append(setMods, um.SetCol("kind").ToArg(v))
	}
	if v, ok := update.Recurrence.Get(); ok {
		setMods = append(setMods, um.SetCol("recurrence").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		setMods = append(setMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		setMods = append(setMods, um.SetCol("transaction_date").ToArg(v))
	}
	if !update.Description.IsUnset() {
		setMods = append(setMods, um.SetCol("description").ToArg(update.Description.Ptr()))
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	affected, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user's transaction.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	affected, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
