package runtime

import (
	"log/slog"
	"solibot/contract"
	"solibot/domain/event"
)

var _ contract.EventPublisher = (*EventBus)(nil)

// EventBus buffers audit events between the engine and the fanout worker.
// Publish never blocks: a full buffer drops the event and logs it.
type EventBus struct {
	log    *slog.Logger
	events chan event.DomainEvent
}

func NewEventBus(log *slog.Logger, bufferSize int) *EventBus {
	return &EventBus{log: log, events: make(chan event.DomainEvent, bufferSize)}
}

func (b *EventBus) Publish(e event.DomainEvent) {
	select {
	case b.events <- e:
	default:
		b.log.Warn("Event buffer full, dropping event", "guild", e.GuildID(), "type", eventType(e))
	}
}

// Events is the receiving end, drained by the fanout worker.
func (b *EventBus) Events() <-chan event.DomainEvent {
	return b.events
}

func eventType(e event.DomainEvent) string {
	switch e.(type) {
	case event.RestrictionApplied:
		return "restriction_applied"
	case event.RestrictionLifted:
		return "restriction_lifted"
	case event.CorrectiveActionExecuted:
		return "corrective_action"
	default:
		return "unknown"
	}
}
