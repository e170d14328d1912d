// Package handlertest builds humatest APIs guarded by the real auth middleware.
package handlertest

import (
	"io"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/logging"
)

const secret = "handler-test-secret-0123456789"

// API is a humatest API plus a signed-in user.
type API struct {
	humatest.TestAPI
	UserID uuid.UUID
	Token  string
}

// AuthHeader is the Authorization header in the form humatest takes as a request arg.
func (a API) AuthHeader() string {
	return "Authorization: Bearer " + a.Token
}

// New returns an API running the logging and auth middleware used in production.
func New(t *testing.T) API {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	_, api := humatest.New(t)
	issuer := auth.NewTokenIssuer(secret, time.Hour)
	api.UseMiddleware(logging.Middleware(logger), auth.Middleware(api, issuer, logger))

	userID := uuid.Must(uuid.NewV4())
	token, err := issuer.Issue(userID)
	require.NoError(t, err)

	return API{TestAPI: api, UserID: userID, Token: token}
}
