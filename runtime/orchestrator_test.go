package runtime_test

import (
	"context"
	"log/slog"
	"solibot/domain"
	"solibot/domain/event"
	"solibot/mocks"
	"solibot/runtime"
	"solibot/runtime/workers"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type RecordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *RecordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *RecordingSink) outcomes() []domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.Outcome
	for _, e := range s.events {
		if executed, ok := e.(event.CorrectiveActionExecuted); ok {
			res = append(res, executed.Outcome)
		}
	}
	return res
}

func Test_Orchestrator_Reconciles_Dispatched_Presence(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)

	orchestrator := runtime.NewOrchestrator(log, clock.NewMock(), workers.NewSupervisor(log, 0), platform,
		runtime.Options{
			Shards:          4,
			BufferSize:      16,
			SinkTimeout:     time.Second,
			ActionTimeout:   time.Second,
			DispatchTimeout: time.Second,
			JanitorInterval: time.Minute,
		})
	sink := &RecordingSink{}
	orchestrator.AddSinks(sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = orchestrator.Start(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	// Given a user blocked from a channel while out of voice
	platform.EXPECT().VoiceChannel(gomock.Any(), domain.GuildID("g"), domain.UserID("u")).Return(domain.NoChannel, nil)
	_, _, err := orchestrator.Manager().Blocks.Create(ctx, "g", "u", "voice", "mod")
	req.NoError(err)

	// When the platform reports them joining it
	platform.EXPECT().Disconnect(gomock.Any(), domain.GuildID("g"), domain.UserID("u"), gomock.Any()).Return(nil).Times(1)
	req.NoError(orchestrator.Dispatcher().Dispatch(ctx, domain.PresenceChange{Guild: "g", User: "u", After: "voice"}))

	// Then the disconnect outcome reaches the sinks
	req.Eventually(func() bool {
		outcomes := sink.outcomes()
		return len(outcomes) == 1 && outcomes[0].Status == domain.StatusApplied
	}, time.Second, 5*time.Millisecond)
}
