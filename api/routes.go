package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/handlers/v1/analysis"
	authhandler "github.com/carson-networks/cashmind/internal/handlers/v1/auth"
	"github.com/carson-networks/cashmind/internal/handlers/v1/dashboard"
	"github.com/carson-networks/cashmind/internal/handlers/v1/status"
	"github.com/carson-networks/cashmind/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashmind/internal/logging"
	"github.com/carson-networks/cashmind/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Tokens  *auth.TokenIssuer
	DB      status.Pinger
}

// Router builds the HTTP handler: /status on plain mux and the /v1 API through huma.
func (r *Rest) Router() http.Handler {
	router := mux.NewRouter()

	statusHandler := status.NewHandler(r.DB)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("CashMind API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humamux.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger), auth.Middleware(api, r.Tokens, r.Logger))

	svc := r.Service
	authhandler.NewHandler(svc.Auth).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListCategoriesHandler(svc.Category).Register(api)

	dashboard.NewHandler(svc.Dashboard).Register(api)
	analysis.NewHandler(svc.Analysis).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
