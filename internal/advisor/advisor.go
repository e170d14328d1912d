// Package advisor turns a monthly summary into free-form financial advice
// using an external text generator.
//
// Advise never fails its caller. A missing generator, a generator error and
// output that cannot be structured all resolve to a NarrativeResult whose
// Status says what happened.
package advisor

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/analytics"
)

var (
	// ErrUnavailable means no text generator is configured.
	ErrUnavailable = errors.New("advisor: no text generator configured")
	// ErrMalformedOutput means the generator answered with text that is not a narrative record.
	ErrMalformedOutput = errors.New("advisor: generator output could not be structured")
	// ErrGenerationFailed means the generator call itself returned an error.
	ErrGenerationFailed = errors.New("advisor: text generation failed")
)

// TextGenerator is the prompt-in, text-out capability the advisor consumes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Status describes how a NarrativeResult was produced.
type Status string

const (
	StatusOK              Status = "ok"
	StatusUnavailable     Status = "unavailable"
	StatusMalformedOutput Status = "malformed_output"
	StatusFailed          Status = "failed"
	StatusNoData          Status = "no_data"
)

const (
	unavailableText = "Narrative analysis is not available. Configure a Google Gemini API key to enable it."
	failedText      = "Could not generate an analysis. Try again later."
	noDataText      = "There are not enough transactions in this period for an analysis."
)

// NarrativeResult is the advice for one period. It is always safe to show
// to a user, whatever the Status.
type NarrativeResult struct {
	Status          Status
	Analysis        string
	PositivePoints  string
	AttentionPoints string
	Recommendations []string
}

// Err maps a degraded Status to its sentinel error, or nil for ok and no_data.
func (r NarrativeResult) Err() error {
	switch r.Status {
	case StatusUnavailable:
		return ErrUnavailable
	case StatusMalformedOutput:
		return ErrMalformedOutput
	case StatusFailed:
		return ErrGenerationFailed
	}
	return nil
}

// Advisor builds prompts from aggregates and interprets the generator's answer.
type Advisor struct {
	generator TextGenerator
	logger    *logrus.Logger
}

// New returns an Advisor. A nil generator yields an advisor that always
// reports StatusUnavailable.
func New(generator TextGenerator, logger *logrus.Logger) *Advisor {
	return &Advisor{generator: generator, logger: logger}
}

// Available reports whether a text generator is configured.
func (a *Advisor) Available() bool {
	return a.generator != nil
}

// Advise asks the generator for an analysis of the given period.
func (a *Advisor) Advise(ctx context.Context, summary analytics.PeriodSummary, breakdown analytics.CategoryBreakdown) NarrativeResult {
	if !a.Available() {
		return NarrativeResult{Status: StatusUnavailable, Analysis: unavailableText, Recommendations: []string{}}
	}
	if summary.TransactionCount == 0 {
		return NarrativeResult{Status: StatusNoData, Analysis: noDataText, Recommendations: []string{}}
	}

	prompt := BuildPrompt(summary, breakdown)
	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"month": summary.Month,
			"year":  summary.Year,
		}).Warn("Advisor.Advise.GenerateFailed")
		return NarrativeResult{Status: StatusFailed, Analysis: failedText, Recommendations: []string{}}
	}

	result, err := ParseResponse(text)
	if err != nil {
		a.logger.WithError(err).WithField("responseLength", len(text)).Warn("Advisor.Advise.MalformedOutput")
	}
	return result
}
