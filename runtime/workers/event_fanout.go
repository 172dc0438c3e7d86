package workers

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/domain/event"
	"time"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts audit events to every sink.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. A slow sink is cut off after sinkTimeout.
//
// It is intended for observability and side effects (logs, audit posts,
// counters), never for the restriction logic itself.
type EventFanout struct {
	log         *slog.Logger
	events      <-chan event.DomainEvent
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events <-chan event.DomainEvent, sinkTimeout time.Duration,
	sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, events: events, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout hands the event to each sink in turn.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "guild", evt.GuildID(), "error", err)
		}
		cancel()
	}
}
