// Package httperr maps service and aggregation errors onto huma status errors.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/charts"
	"github.com/carson-networks/cashmind/internal/service"
)

// From converts err into a huma error. Validation failures keep their own
// message; anything unrecognised becomes a 500 with fallback as the message.
func From(err error, fallback string) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidPeriod),
		errors.Is(err, analytics.ErrInvalidLimit),
		errors.Is(err, analytics.ErrInvalidWindow),
		errors.Is(err, service.ErrInvalidTransaction),
		errors.Is(err, service.ErrInvalidUser):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, charts.ErrNotEnoughPoints),
		errors.Is(err, charts.ErrNoExpenses):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, fallback, err)
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}

// UserID returns the authenticated user or a 401 when the request has none.
func UserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
