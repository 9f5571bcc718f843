package form

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/sentiview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	state  *State
	result models.AnalysisResult
	err    error

	calls             []models.AnalysisRequest
	loadingDuringCall []bool
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, input models.AnalysisRequest) (models.AnalysisResult, error) {
	f.calls = append(f.calls, input)
	if f.state != nil {
		f.loadingDuringCall = append(f.loadingDuringCall, f.state.Loading)
	}
	return f.result, f.err
}

func result(sentiment string, confidence float64) models.AnalysisResult {
	return models.AnalysisResult{Sentiment: &sentiment, Confidence: &confidence}
}

func TestSetReview_OnlyChangesReview(t *testing.T) {
	msg := "old error"
	s := &State{Error: &msg}

	s.SetReview("typing")

	assert.Equal(t, "typing", s.Review)
	assert.False(t, s.Loading)
	assert.Equal(t, &msg, s.Error)
}

func TestSubmit_BlankReviewClearsWithoutCalling(t *testing.T) {
	for _, review := range []string{"", "   ", "\n\t "} {
		prev := result("Positive", 90)
		msg := "stale"
		s := &State{Review: review, Sentiment: prev.Sentiment, Confidence: prev.Confidence, Error: &msg}
		analyzer := &fakeAnalyzer{state: s}

		s.Submit(context.Background(), analyzer)

		assert.Empty(t, analyzer.calls, "review %q", review)
		assert.Nil(t, s.Sentiment)
		assert.Nil(t, s.Confidence)
		assert.Nil(t, s.Error)
		assert.False(t, s.Loading)
	}
}

func TestSubmit_Success(t *testing.T) {
	s := &State{}
	s.SetReview("Great product!")
	analyzer := &fakeAnalyzer{state: s, result: result("Positive", 87.5)}

	assert.False(t, s.Loading)
	s.Submit(context.Background(), analyzer)

	require.Len(t, analyzer.calls, 1)
	assert.Equal(t, models.AnalysisRequest{Review: "Great product!"}, analyzer.calls[0])
	assert.Equal(t, []bool{true}, analyzer.loadingDuringCall)
	assert.False(t, s.Loading)
	assert.Nil(t, s.Error)
	require.NotNil(t, s.Sentiment)
	assert.Equal(t, "Positive", *s.Sentiment)
	assert.Equal(t, 87.5, *s.Confidence)

	v := s.View()
	assert.True(t, v.ShowResult)
	assert.True(t, v.Positive)
	assert.Equal(t, "87.50%", v.ConfidenceText)
	assert.False(t, v.ShowError)
}

func TestSubmit_FailureClearsResult(t *testing.T) {
	s := &State{}
	s.SetReview("Great product!")
	s.Submit(context.Background(), &fakeAnalyzer{result: result("Positive", 87.5)})

	analyzer := &fakeAnalyzer{state: s, err: errors.New("unexpected status code: 500")}
	s.Submit(context.Background(), analyzer)

	assert.Equal(t, []bool{true}, analyzer.loadingDuringCall)
	assert.False(t, s.Loading)
	assert.Nil(t, s.Sentiment)
	assert.Nil(t, s.Confidence)
	require.NotNil(t, s.Error)
	assert.Equal(t, ERROR_MESSAGE, *s.Error)

	v := s.View()
	assert.False(t, v.ShowResult)
	assert.True(t, v.ShowError)
	assert.Equal(t, ERROR_MESSAGE, v.Error)
}

func TestSubmit_ClearsPreviousErrorOnRetry(t *testing.T) {
	s := &State{Review: "ok"}
	s.Submit(context.Background(), &fakeAnalyzer{err: errors.New("down")})
	require.NotNil(t, s.Error)

	s.Submit(context.Background(), &fakeAnalyzer{result: result("Negative", 62.3)})

	assert.Nil(t, s.Error)
	v := s.View()
	assert.True(t, v.ShowResult)
	assert.False(t, v.Positive)
	assert.Equal(t, "Negative", v.Sentiment)
	assert.Equal(t, "62.30%", v.ConfidenceText)
}

func TestBeginFinish_LoadingWindow(t *testing.T) {
	s := &State{Review: "fine"}

	input, ok := s.Begin()
	require.True(t, ok)
	assert.Equal(t, "fine", input.Review)
	assert.True(t, s.Loading)
	assert.False(t, s.CanSubmit())
	assert.Equal(t, LOADING_LABEL, s.View().SubmitLabel)

	s.Finish(result("Neutral", 50), nil)
	assert.False(t, s.Loading)
	assert.True(t, s.CanSubmit())
	assert.Equal(t, SUBMIT_LABEL, s.View().SubmitLabel)
}

func TestCanSubmit(t *testing.T) {
	assert.False(t, (&State{}).CanSubmit())
	assert.False(t, (&State{Review: "  "}).CanSubmit())
	assert.False(t, (&State{Review: "text", Loading: true}).CanSubmit())
	assert.True(t, (&State{Review: "text"}).CanSubmit())
}

func TestView_ResultVisibility(t *testing.T) {
	zero := 0.0
	empty := ""
	label := "Positive"

	assert.True(t, (&State{Sentiment: &label, Confidence: &zero}).View().ShowResult, "zero confidence is displayable")
	assert.Equal(t, "0.00%", (&State{Sentiment: &label, Confidence: &zero}).View().ConfidenceText)
	assert.False(t, (&State{Sentiment: &label}).View().ShowResult)
	assert.False(t, (&State{Confidence: &zero}).View().ShowResult)
	assert.False(t, (&State{Sentiment: &empty, Confidence: &zero}).View().ShowResult)
}

func TestView_OnlyExactPositiveIsPositive(t *testing.T) {
	for label, want := range map[string]bool{
		"Positive": true,
		"positive": false,
		"Negative": false,
		"Neutral":  false,
	} {
		l := label
		c := 70.0
		v := (&State{Sentiment: &l, Confidence: &c}).View()
		assert.Equal(t, want, v.Positive, label)
	}
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "87.50%", FormatConfidence(87.5))
	assert.Equal(t, "62.30%", FormatConfidence(62.3))
	assert.Equal(t, "100.00%", FormatConfidence(100))
}
