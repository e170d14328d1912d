// Package auth serves registration and login.
package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashmind/internal/handlers/httperr"
	"github.com/carson-networks/cashmind/internal/logging"
	"github.com/carson-networks/cashmind/internal/service"
)

type authService interface {
	Register(ctx context.Context, fullName, email, password string) (*service.Session, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
}

// RegisterBody is the request body for creating a user.
type RegisterBody struct {
	FullName string `json:"fullName" minLength:"1" maxLength:"200" doc:"Display name"`
	Email    string `json:"email" format:"email" maxLength:"254" doc:"Login email, stored lower-cased"`
	Password string `json:"password" minLength:"8" maxLength:"72" doc:"Password"`
}

type RegisterInput struct {
	Body RegisterBody
}

// LoginBody is the request body for signing in.
type LoginBody struct {
	Email    string `json:"email" minLength:"1" doc:"Login email"`
	Password string `json:"password" minLength:"1" doc:"Password"`
}

type LoginInput struct {
	Body LoginBody
}

// SessionResponse carries a bearer token for the Authorization header.
type SessionResponse struct {
	UserID string `json:"userID" doc:"User UUID"`
	Token  string `json:"token" doc:"Bearer token"`
}

type SessionOutput struct {
	Status int
	Body   SessionResponse
}

// Handler serves /v1/auth/*.
type Handler struct {
	AuthService authService
}

func NewHandler(svc authService) *Handler {
	return &Handler{AuthService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-register",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register",
		Description: "Creates a user and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.register)

	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Exchanges email and password for a bearer token.",
		Tags:        []string{"Auth"},
	}, h.login)
}

func (h *Handler) register(ctx context.Context, input *RegisterInput) (*SessionOutput, error) {
	session, err := h.AuthService.Register(ctx, input.Body.FullName, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.From(err, "failed to register")
	}

	logging.GetLogData(ctx).AddData("userID", session.UserID.String())
	return &SessionOutput{
		Status: http.StatusCreated,
		Body:   SessionResponse{UserID: session.UserID.String(), Token: session.Token},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	session, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.From(err, "failed to log in")
	}

	logging.GetLogData(ctx).AddData("userID", session.UserID.String())
	return &SessionOutput{
		Status: http.StatusOK,
		Body:   SessionResponse{UserID: session.UserID.String(), Token: session.Token},
	}, nil
}
