// Package analysis serves the narrative advisor endpoints.
package analysis

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/auth"
	"github.com/carson-networks/cashmind/internal/handlers/httperr"
	"github.com/carson-networks/cashmind/internal/logging"
)

var security = []map[string][]string{{auth.SecurityScheme: {}}}

type analysisService interface {
	Available() bool
	Analyze(ctx context.Context, userID uuid.UUID, month, year int) (advisor.NarrativeResult, error)
}

// AnalyzeBody selects the month to analyse.
type AnalyzeBody struct {
	Month int `json:"month" doc:"Calendar month (1-12)"`
	Year  int `json:"year" minimum:"1" doc:"Calendar year"`
}

type AnalyzeInput struct {
	Body AnalyzeBody
}

// Narrative is the advisor's answer. Status tells degraded results apart:
// only "ok" carries generated advice.
type Narrative struct {
	Status          string   `json:"status" enum:"ok,unavailable,malformed_output,failed,no_data"`
	Analysis        string   `json:"analysis"`
	PositivePoints  string   `json:"positivePoints"`
	AttentionPoints string   `json:"attentionPoints"`
	Recommendations []string `json:"recommendations"`
}

type AnalyzeOutput struct {
	Body Narrative
}

type StatusOutput struct {
	Body struct {
		Available bool `json:"available" doc:"Whether a text generator is configured"`
	}
}

// Handler serves /v1/analysis/*.
type Handler struct {
	AnalysisService analysisService
}

func NewHandler(svc analysisService) *Handler {
	return &Handler{AnalysisService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analysis-analyze",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/analyze",
		Summary:     "Analyse a month",
		Description: "Asks the narrative advisor for comments on one month. Advisor problems are reported in status, not as errors.",
		Tags:        []string{"Analysis"},
		Security:    security,
	}, h.analyze)

	huma.Register(api, huma.Operation{
		OperationID: "analysis-status",
		Method:      http.MethodGet,
		Path:        "/v1/analysis/status",
		Summary:     "Advisor availability",
		Tags:        []string{"Analysis"},
		Security:    security,
	}, h.status)
}

func (h *Handler) analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	userID, err := httperr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.AnalysisService.Analyze(ctx, userID, input.Body.Month, input.Body.Year)
	if err != nil {
		return nil, httperr.From(err, "failed to analyse period")
	}

	logging.GetLogData(ctx).AddData("advisorStatus", string(result.Status))
	recommendations := result.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return &AnalyzeOutput{Body: Narrative{
		Status:          string(result.Status),
		Analysis:        result.Analysis,
		PositivePoints:  result.PositivePoints,
		AttentionPoints: result.AttentionPoints,
		Recommendations: recommendations,
	}}, nil
}

func (h *Handler) status(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	out := &StatusOutput{}
	out.Body.Available = h.AnalysisService.Available()
	return out, nil
}
