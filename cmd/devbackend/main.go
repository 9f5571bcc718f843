package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/sentiview/config"
	"github.com/spacesedan/sentiview/internal/devbackend"
	"github.com/spacesedan/sentiview/internal/logging"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	addr := ":" + config.DevBackendPort()
	slog.Info("[DevBackend] Serving stand-in inference backend", slog.String("addr", addr))

	if err := devbackend.NewRouter().Run(addr); err != nil {
		slog.Error("[DevBackend] error starting server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
