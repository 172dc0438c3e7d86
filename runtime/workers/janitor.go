package workers

import (
	"context"
	"log/slog"
	"solibot/contract"
	"time"

	"github.com/benbjohnson/clock"
)

var _ contract.Worker = (*Janitor)(nil)

// Janitor periodically evicts expired entries, such as confinement flows
// abandoned halfway.
type Janitor struct {
	log      *slog.Logger
	clock    clock.Clock
	interval time.Duration
	evictors []contract.Evictor
}

func NewJanitor(log *slog.Logger, clk clock.Clock, interval time.Duration, evictors ...contract.Evictor) *Janitor {
	return &Janitor{log: log, clock: clk, interval: interval, evictors: evictors}
}

func (j *Janitor) Run(ctx context.Context) error {
	ticker := j.clock.Ticker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, e := range j.evictors {
				if n := e.EvictExpired(); n > 0 {
					j.log.Debug("Expired entries evicted", "count", n)
				}
			}
		}
	}
}
