package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/feedboard-dev/feedboard/internal/config"
	"github.com/feedboard-dev/feedboard/internal/logger"
	"github.com/feedboard-dev/feedboard/internal/router"
	"github.com/feedboard-dev/feedboard/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Public.Http.Host, cfg.Public.Http.Port)
	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
