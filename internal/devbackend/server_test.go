package devbackend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter()
}

func post(body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(w, req)
	return w
}

func TestPredict_ScoresReview(t *testing.T) {
	w := post(`{"review":"Great product, I love it!"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var res sentiment.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Positive", res.Sentiment)
	assert.Greater(t, res.Confidence, 50.0)
}

func TestPredict_MissingReview(t *testing.T) {
	for _, body := range []string{`{}`, `{"review":""}`, `not json`} {
		w := post(body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"No review provided"}`, w.Body.String())
	}
}
