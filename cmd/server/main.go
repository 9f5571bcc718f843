package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiview/config"
	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/handler"
	"github.com/spacesedan/sentiview/internal/logging"
	"github.com/spacesedan/sentiview/internal/monitoring"
)

func main() {
	env := config.AppEnv()
	config.LoadEnv(env)
	logging.InitLogger()

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inference := clients.NewInferenceClient(config.BackendURL)

	backendHealthy := &atomic.Bool{}
	backendHealthy.Store(true)
	go monitoring.MonitorBackendHealth(ctx, inference, config.HealthInterval(), backendHealthy)

	port := config.Port()
	allowedOrigins := config.AllowedOrigins()
	slog.Info("[Server] AllowOrigins URL:", "urls", allowedOrigins)

	r := handler.NewRouter(handler.RouterConfig{
		Predictor:      inference,
		Analyzer:       clients.NewProxyClient("http://127.0.0.1:" + port),
		BackendHealthy: backendHealthy,
		AllowedOrigins: allowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("[Server] Listening",
			slog.String("addr", srv.Addr),
			slog.String("backend_url", config.BackendURL()),
			slog.String("env", env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Server] error starting server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Server] Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Server] Shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
