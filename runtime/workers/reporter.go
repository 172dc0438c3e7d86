package workers

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/moderation"
	"time"

	"github.com/benbjohnson/clock"
)

var _ contract.Worker = (*ReporterWorker)(nil)

// RestrictionState is what the reporter samples.
type RestrictionState interface {
	Snapshot() moderation.Snapshot
	LiveTimers() int
}

// ReporterWorker logs how many restrictions are live at every interval,
// and once more when stopped.
type ReporterWorker struct {
	log      *slog.Logger
	clock    clock.Clock
	interval time.Duration
	state    RestrictionState
}

func NewReporterWorker(log *slog.Logger, clk clock.Clock, interval time.Duration, state RestrictionState) *ReporterWorker {
	return &ReporterWorker{log: log, clock: clk, interval: interval, state: state}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := w.clock.Now()
	ticker := w.clock.Ticker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *ReporterWorker) report(startTime time.Time) {
	snapshot := w.state.Snapshot()
	w.log.Info("Restriction stats",
		"uptime", w.clock.Since(startTime).Round(time.Second).String(),
		"mutes", len(snapshot.Mutes),
		"confinements", len(snapshot.Confinements),
		"blocks", len(snapshot.Blocks),
		"live_timers", w.state.LiveTimers(),
	)
}
