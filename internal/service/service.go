package service

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Ledger         LedgerReader
	Users          UserReader
	Operator       ActionProcessor
	Tokens         TokenIssuer
	Advisor        NarrativeAdvisor
	Categories     []string
	LedgerTimeout  time.Duration
	AdvisorTimeout time.Duration
	Clock          Clock
	Logger         *logrus.Logger
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Dashboard   *DashboardService
	Analysis    *AnalysisService
	Category    *CategoryService
	Auth        *AuthService
}

// NewService creates a new Service from its dependencies.
func NewService(deps Dependencies) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		Transaction: NewTransactionService(deps.Ledger, deps.Operator, clock, deps.Logger),
		Dashboard:   NewDashboardService(deps.Ledger, deps.LedgerTimeout, clock),
		Analysis:    NewAnalysisService(deps.Ledger, deps.Advisor, deps.LedgerTimeout, deps.AdvisorTimeout, deps.Logger),
		Category:    NewCategoryService(deps.Ledger, deps.Categories),
		Auth:        NewAuthService(deps.Users, deps.Operator, deps.Tokens, deps.Logger),
	}
}
