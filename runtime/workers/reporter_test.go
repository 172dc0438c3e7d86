package workers

import (
	"context"
	"log/slog"
	"solibot/domain"
	"solibot/moderation"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

type countingState struct {
	samples atomic.Int32
}

func (s *countingState) Snapshot() moderation.Snapshot {
	s.samples.Add(1)
	return moderation.Snapshot{Blocks: []domain.Block{{Guild: "g", User: "u", Channel: "c"}}}
}

func (s *countingState) LiveTimers() int { return 0 }

func TestReporterWorker_Samples_On_Tick_And_Stop(t *testing.T) {
	req := require.New(t)
	clk := clock.NewMock()
	state := &countingState{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewReporterWorker(slog.Default(), clk, time.Minute, state).Run(ctx)
	}()

	// The ticker is created inside Run: keep advancing until it fires
	req.Eventually(func() bool {
		clk.Add(time.Minute)
		return state.samples.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	// When stopped, one last sample is logged
	before := state.samples.Load()
	cancel()
	req.NoError(<-done)
	req.GreaterOrEqual(state.samples.Load(), before+1)
}
