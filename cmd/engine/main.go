package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/events"
	"neurojobs-engine/internal/httpapi"
	"neurojobs-engine/internal/logger"
	"neurojobs-engine/internal/pipeline"
	"neurojobs-engine/internal/scheduler"
	"neurojobs-engine/internal/store"
)

func main() {
	logger.Init()
	log := logger.For("engine")

	// Data dir: env if provided, else local folder.
	dataDir := os.Getenv("NEUROJOBS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("data dir")
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config bootstrap failed")
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", userCfgPath).Msg("config load failed")
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, warn := range validation.Warnings {
		log.Warn().Msg(warn)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	file := store.NewFile(filepath.Join(dataDir, "data", "jobs.json"))
	hub := events.NewHub()

	runOnce := func(ctx context.Context) (pipeline.RunReport, error) {
		return pipeline.RunOnce(ctx, pipeline.Deps{
			Cfg:      cfg,
			File:     file,
			Fetchers: pipeline.Fetchers(cfg),
			Hub:      hub,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scheduler.Every(ctx, time.Duration(cfg.Pipeline.IntervalSeconds)*time.Second, "pipeline", func(ctx context.Context) error {
		_, err := runOnce(ctx)
		return err
	})

	api := &httpapi.API{Cfg: cfg, File: file, Hub: hub, RunOnce: runOnce}

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("listen")
	}
	log.Info().Str("addr", "http://"+addr).Str("store", file.Path()).Msg("engine listening")

	srv := &http.Server{
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.Serve(ln); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
