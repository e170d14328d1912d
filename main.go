package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/api"
	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/config"
	"github.com/carson-networks/cashmind/internal/logging"
	"github.com/carson-networks/cashmind/internal/operator"
	"github.com/carson-networks/cashmind/internal/service"
	"github.com/carson-networks/cashmind/internal/storage"
)

const startupTimeout = 15 * time.Second

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("cashmind starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if envConfig.AutoMigrate {
		if err := storage.RunMigrations(envConfig.PostgresURL(), logger); err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
	}

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	dbStorage, err := storage.NewStorage(startupCtx, envConfig)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(operator.StorageBegin(dbStorage), envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.JWTExpiry)

	svc := service.NewService(service.Dependencies{
		Ledger:         dbStorage.Reader.Transactions,
		Users:          dbStorage.Reader.Users,
		Operator:       delegator,
		Tokens:         tokens,
		Advisor:        newAdvisor(ctx, envConfig, logger),
		Categories:     service.DefaultCategories,
		LedgerTimeout:  envConfig.LedgerTimeout,
		AdvisorTimeout: envConfig.AdvisorTimeout,
		Clock:          time.Now,
		Logger:         logger,
	})

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: svc,
		Tokens:  tokens,
		DB:      dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
		os.Exit(1)
	}
	logger.Info("cashmind stopped")
}

// newAdvisor wires the Gemini generator when an API key is configured.
// Without one the advisor reports every request as unavailable.
func newAdvisor(ctx context.Context, envConfig *config.Config, logger *logrus.Logger) *advisor.Advisor {
	var generator advisor.TextGenerator
	if envConfig.GoogleAPIKey != "" {
		gemini, err := advisor.NewGeminiGenerator(ctx, envConfig.GoogleAPIKey, envConfig.GeminiModel)
		if err != nil {
			logger.WithError(err).Warn("advisor.NewGeminiGenerator")
		} else {
			generator = gemini
		}
	}

	if generator == nil {
		logger.Info("narrative advisor disabled")
	}
	return advisor.New(generator, logger)
}
