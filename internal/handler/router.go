package handler

import (
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/internal/form"
	"github.com/spacesedan/sentiview/internal/logging"
)

type RouterConfig struct {
	Predictor      Predictor
	Analyzer       form.Analyzer
	BackendHealthy *atomic.Bool
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	r.SetHTMLTemplate(loadTemplates())

	predictHandler := NewPredictHandler(cfg.Predictor)
	pageHandler := NewPageHandler(cfg.Analyzer)
	healthHandler := NewHealthHandler(cfg.BackendHealthy)

	r.POST("/api/predict", predictHandler.Predict)
	r.GET("/", pageHandler.Index)
	r.POST("/", pageHandler.Analyze)
	r.GET("/health", healthHandler.GetHealth)

	return r
}
