package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/storage/user"
)

var _ IAction = (*CreateUser)(nil)

// CreateUser registers a user. CreatedID is set once Perform succeeds.
type CreateUser struct {
	FullName     string
	Email        string
	PasswordHash string
	CreatedID    uuid.UUID
}

func (c *CreateUser) Perform(ctx context.Context, writer Writer) error {
	id, err := writer.InsertUser(ctx, &user.UserCreate{
		FullName:     c.FullName,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
