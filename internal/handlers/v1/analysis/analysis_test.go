package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashmind/internal/advisor"
	"github.com/carson-networks/cashmind/internal/analytics"
	"github.com/carson-networks/cashmind/internal/handlers/handlertest"
)

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) Available() bool {
	return m.Called().Bool(0)
}

func (m *mockAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, month, year int) (advisor.NarrativeResult, error) {
	args := m.Called(ctx, userID, month, year)
	return args.Get(0).(advisor.NarrativeResult), args.Error(1)
}

func newTestAPI(t *testing.T) (handlertest.API, *mockAnalysisService) {
	t.Helper()
	svc := new(mockAnalysisService)
	api := handlertest.New(t)
	NewHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api, svc
}

func TestAnalyze_OK(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Analyze", mock.Anything, api.UserID, 6, 2024).Return(advisor.NarrativeResult{
		Status:          advisor.StatusOK,
		Analysis:        "Healthy month.",
		PositivePoints:  "Low housing cost.",
		AttentionPoints: "Dining out grew.",
		Recommendations: []string{"Cook at home", "Review subscriptions"},
	}, nil)

	resp := api.Post("/v1/analysis/analyze", api.AuthHeader(), AnalyzeBody{Month: 6, Year: 2024})
	require.Equal(t, http.StatusOK, resp.Code)

	var body Narrative
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []string{"Cook at home", "Review subscriptions"}, body.Recommendations)
}

func TestAnalyze_DegradedIsStillOK(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Analyze", mock.Anything, api.UserID, 6, 2024).Return(advisor.NarrativeResult{
		Status:   advisor.StatusUnavailable,
		Analysis: "Narrative analysis is not configured.",
	}, nil)

	resp := api.Post("/v1/analysis/analyze", api.AuthHeader(), AnalyzeBody{Month: 6, Year: 2024})
	require.Equal(t, http.StatusOK, resp.Code)

	var body Narrative
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unavailable", body.Status)
	assert.NotNil(t, body.Recommendations)
	assert.Empty(t, body.Recommendations)
}

func TestAnalyze_Errors(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Analyze", mock.Anything, api.UserID, 13, 2024).Return(advisor.NarrativeResult{}, analytics.ErrInvalidPeriod)
	svc.On("Analyze", mock.Anything, api.UserID, 6, 2024).Return(advisor.NarrativeResult{}, errors.New("database unavailable"))

	assert.Equal(t, http.StatusBadRequest, api.Post("/v1/analysis/analyze", api.AuthHeader(), AnalyzeBody{Month: 13, Year: 2024}).Code)
	assert.Equal(t, http.StatusInternalServerError, api.Post("/v1/analysis/analyze", api.AuthHeader(), AnalyzeBody{Month: 6, Year: 2024}).Code)
}

func TestStatus(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("Available").Return(true)

	resp := api.Get("/v1/analysis/status", api.AuthHeader())
	require.Equal(t, http.StatusOK, resp.Code)

	var body StatusOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.True(t, body.Body.Available)

	assert.Equal(t, http.StatusUnauthorized, api.Get("/v1/analysis/status").Code)
}
