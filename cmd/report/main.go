// One-shot pipeline run: fetch, classify, merge, persist, print the run
// report as JSON. Suitable for cron; the engine binary is the long-running
// alternative.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/logger"
	"neurojobs-engine/internal/pipeline"
	"neurojobs-engine/internal/store"
)

func main() {
	logger.Init()
	log := logger.For("report")

	dataDir := os.Getenv("NEUROJOBS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatal().Err(err).Msg("config bootstrap failed")
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	cfg, _ = config.NormalizeAndValidate(cfg)
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := pipeline.RunOnce(ctx, pipeline.Deps{
		Cfg:      cfg,
		File:     store.NewFile(filepath.Join(dataDir, "data", "jobs.json")),
		Fetchers: pipeline.Fetchers(cfg),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}
