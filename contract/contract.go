//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"solibot/domain"
	"solibot/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives audit events after fanout.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// EventPublisher hands events to the fanout. Publish must never block the caller.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}

// Platform is the chat platform connection used to correct voice presence.
// Every call is a fallible network round trip.
type Platform interface {
	Disconnect(ctx context.Context, guild domain.GuildID, user domain.UserID, reason string) error
	MoveToChannel(ctx context.Context, guild domain.GuildID, user domain.UserID, channel domain.ChannelID, reason string) error
	SetMute(ctx context.Context, guild domain.GuildID, user domain.UserID, muted bool, reason string) error
	// VoiceChannel returns domain.NoChannel when the user is not connected.
	VoiceChannel(ctx context.Context, guild domain.GuildID, user domain.UserID) (domain.ChannelID, error)
}

// Notifier posts plain text to a channel, used for audit messages.
type Notifier interface {
	SendMessage(ctx context.Context, channel domain.ChannelID, content string) error
}

// RestrictionReader is the read-only view of the registries.
// Only the policy manager holds the writable store.
type RestrictionReader interface {
	Mute(key domain.MemberKey) (domain.Mute, bool)
	Confinement(key domain.MemberKey) (domain.Confinement, bool)
	IsBlocked(key domain.BlockKey) bool
}

// PresenceDispatcher routes platform presence notifications to the reconciler.
type PresenceDispatcher interface {
	Dispatch(ctx context.Context, change domain.PresenceChange) error
}

// PresenceReconciler turns one presence change into at most one corrective outcome.
type PresenceReconciler interface {
	Reconcile(ctx context.Context, change domain.PresenceChange) domain.Outcome
}

// Evictor drops entries whose time to live elapsed and returns how many.
type Evictor interface {
	EvictExpired() int
}
