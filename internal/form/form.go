// Package form holds the sentiment form's UI state and its transitions. It
// does not render anything itself; the web page and the terminal client both
// drive a State and draw its View.
package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentiview/internal/models"
)

const (
	ERROR_MESSAGE      = "An error occurred while analyzing the sentiment. Please try again."
	POSITIVE_SENTIMENT = "Positive"
	SUBMIT_LABEL       = "Analyze Sentiment"
	LOADING_LABEL      = "Analyzing..."
)

// Analyzer sends one review to the proxy endpoint.
type Analyzer interface {
	Analyze(ctx context.Context, input models.AnalysisRequest) (models.AnalysisResult, error)
}

// State is not safe for concurrent use. Loading only advises callers not to
// submit again; nothing here enforces it.
type State struct {
	Review     string
	Sentiment  *string
	Confidence *float64
	Loading    bool
	Error      *string
}

func (s *State) SetReview(text string) {
	s.Review = text
}

func (s *State) CanSubmit() bool {
	return !s.Loading && !isBlank(s.Review)
}

// Begin starts a submission. For a blank review it clears the result and
// error and reports false; no request must be sent. Otherwise it sets Loading
// and returns the request to send.
func (s *State) Begin() (models.AnalysisRequest, bool) {
	if isBlank(s.Review) {
		s.Sentiment = nil
		s.Confidence = nil
		s.Error = nil
		return models.AnalysisRequest{}, false
	}

	s.Loading = true
	s.Error = nil
	return models.AnalysisRequest{Review: s.Review}, true
}

// Finish applies the outcome of a request started by Begin. Loading is
// cleared on every path.
func (s *State) Finish(result models.AnalysisResult, err error) {
	defer func() { s.Loading = false }()

	if err != nil {
		slog.Error("[Form] Sentiment analysis failed",
			slog.String("error", err.Error()))
		msg := ERROR_MESSAGE
		s.Error = &msg
		s.Sentiment = nil
		s.Confidence = nil
		return
	}

	s.Sentiment = result.Sentiment
	s.Confidence = result.Confidence
}

// Submit runs Begin, the call and Finish synchronously.
func (s *State) Submit(ctx context.Context, analyzer Analyzer) {
	input, ok := s.Begin()
	if !ok {
		return
	}

	result, err := analyzer.Analyze(ctx, input)
	s.Finish(result, err)
}

type View struct {
	Review         string
	SubmitLabel    string
	SubmitDisabled bool
	Loading        bool

	ShowResult     bool
	Sentiment      string
	ConfidenceText string
	Positive       bool

	ShowError bool
	Error     string
}

func (s *State) View() View {
	v := View{
		Review:         s.Review,
		SubmitLabel:    SUBMIT_LABEL,
		SubmitDisabled: !s.CanSubmit(),
		Loading:        s.Loading,
	}
	if s.Loading {
		v.SubmitLabel = LOADING_LABEL
	}

	if s.Sentiment != nil && *s.Sentiment != "" && s.Confidence != nil {
		v.ShowResult = true
		v.Sentiment = *s.Sentiment
		v.ConfidenceText = FormatConfidence(*s.Confidence)
		v.Positive = *s.Sentiment == POSITIVE_SENTIMENT
	}

	if s.Error != nil {
		v.ShowError = true
		v.Error = *s.Error
	}

	return v
}

// FormatConfidence renders a percentage value with two decimals.
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
