package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/models"
)

const INTERNAL_SERVER_ERROR = "Internal Server Error"

type Predictor interface {
	Predict(ctx context.Context, payload []byte) (json.RawMessage, error)
}

type PredictHandler struct {
	backend Predictor
}

func NewPredictHandler(backend Predictor) *PredictHandler {
	return &PredictHandler{backend: backend}
}

// Predict relays the request body to the inference backend. Every failure
// becomes the same 500 so nothing about the backend leaks to the caller.
func (h *PredictHandler) Predict(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.fail(c, err)
		return
	}

	out, err := h.backend.Predict(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

func (h *PredictHandler) fail(c *gin.Context, err error) {
	slog.Error("[PredictHandler] Prediction failed", "error", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: INTERNAL_SERVER_ERROR})
}
