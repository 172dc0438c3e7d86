package runtime

import (
	"context"
	"log/slog"
	"solibot/domain"
	"solibot/domain/event"
	"solibot/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_Same_User_Same_Shard(t *testing.T) {
	req := require.New(t)
	d := NewDispatcher(slog.Default(), 8, 4, time.Second)

	key := domain.NewMemberKey("g", "u")
	first := d.shardOf(key)
	for range 10 {
		req.Equal(first, d.shardOf(key))
	}
	req.Len(d.Workers(nil), 8)
}

func TestDispatcher_Dispatch_Times_Out_When_Shard_Full(t *testing.T) {
	req := require.New(t)
	d := NewDispatcher(slog.Default(), 1, 1, 20*time.Millisecond)
	change := domain.PresenceChange{Guild: "g", User: "u", After: "a"}

	req.NoError(d.Dispatch(context.Background(), change))

	// Nobody drains the single slot
	err := d.Dispatch(context.Background(), change)
	req.ErrorIs(err, errors.ErrDispatchTimeout)

	req.Equal(change, <-d.shards[0])
}

func TestDispatcher_Dispatch_Honors_Context(t *testing.T) {
	req := require.New(t)
	d := NewDispatcher(slog.Default(), 1, 0, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(d.Dispatch(ctx, domain.PresenceChange{Guild: "g", User: "u"}), context.Canceled)
}

func TestEventBus_Publish_Never_Blocks(t *testing.T) {
	req := require.New(t)
	bus := NewEventBus(slog.Default(), 1)

	bus.Publish(event.RestrictionLifted{Guild: "g"})
	bus.Publish(event.RestrictionLifted{Guild: "dropped"})

	req.Len(bus.Events(), 1)
	got := <-bus.Events()
	req.Equal(domain.GuildID("g"), got.GuildID())
}
