// Package devbackend is a local stand-in for the inference service. It speaks
// the same /predict contract so the proxy can be run without the model.
package devbackend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/logging"
	"github.com/spacesedan/sentiview/internal/sentiment"
)

type predictRequest struct {
	Review string `json:"review"`
}

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())
	r.POST("/predict", Predict)
	return r
}

func Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Review == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No review provided"})
		return
	}

	prediction := sentiment.Predict(req.Review)
	slog.Debug("[DevBackend] Scored review",
		slog.String("sentiment", prediction.Sentiment),
		slog.Float64("confidence", prediction.Confidence))

	c.JSON(http.StatusOK, prediction)
}
