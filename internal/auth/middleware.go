package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/logging"
)

// SecurityScheme is the OpenAPI security scheme name operations reference.
const SecurityScheme = "bearer"

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user's id, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}

// Middleware rejects requests to operations that declare a security
// requirement unless they carry a valid bearer token. Operations without a
// security requirement pass through untouched.
func Middleware(api huma.API, issuer *TokenIssuer, logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			logger.WithField("operation", ctx.Operation().OperationID).Debug("Auth.Middleware.MissingToken")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := issuer.Parse(token)
		if err != nil {
			logger.WithError(err).WithField("operation", ctx.Operation().OperationID).Info("Auth.Middleware.InvalidToken")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid bearer token")
			return
		}

		logging.GetLogData(ctx.Context()).AddData("userID", userID.String())
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
