package scheduler

import (
	"context"
	"time"

	"neurojobs-engine/internal/logger"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every tick until ctx is done.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	log := logger.For("scheduler")

	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.Error().Err(err).Str("task", name).Msg("task failed")
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
