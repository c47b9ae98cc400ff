package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// StartSweeper calls st.Sweep(maxIdle) every interval until ctx is done.
// It returns immediately; the loop runs in its own goroutine.
func StartSweeper(ctx context.Context, st Store, every, maxIdle time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := st.Sweep(ctx, maxIdle)
				if err != nil && ctx.Err() == nil {
					log.Warn().Err(err).Msg("session sweep")
					continue
				}
				if n > 0 {
					log.Info().Int("evicted", n).Int("live", st.Len()).Msg("idle sessions swept")
				}
			}
		}
	}()
}
