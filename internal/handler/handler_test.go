package handler

import (
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/form"
)

func newTestRouter(t *testing.T, backendURL string, analyzer form.Analyzer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	healthy := &atomic.Bool{}
	healthy.Store(true)

	return NewRouter(RouterConfig{
		Predictor:      clients.NewInferenceClient(func() string { return backendURL }),
		Analyzer:       analyzer,
		BackendHealthy: healthy,
	})
}
