// Package event defines the audit events emitted by the restriction engine.
// Events are facts: they are published after the registry change took effect.
package event

import (
	"solibot/domain"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	GuildID() domain.GuildID
}

// Meta is embedded in every event.
type Meta struct {
	ID uuid.UUID
	At time.Time
}

func NewMeta(at time.Time) Meta {
	return Meta{ID: uuid.New(), At: at.UTC()}
}

// RestrictionApplied is emitted once a mute, confinement or block is recorded.
type RestrictionApplied struct {
	Meta
	Kind      domain.Kind
	Guild     domain.GuildID
	User      domain.UserID
	Channel   domain.ChannelID
	IssuedBy  domain.UserID
	ExpiresAt *time.Time
}

func (e RestrictionApplied) GuildID() domain.GuildID {
	return e.Guild
}

// RestrictionLifted is emitted by the single teardown path, manual or expired.
type RestrictionLifted struct {
	Meta
	Kind      domain.Kind
	Guild     domain.GuildID
	User      domain.UserID
	Channel   domain.ChannelID
	Cause     domain.LiftCause
	Remaining *time.Duration
}

func (e RestrictionLifted) GuildID() domain.GuildID {
	return e.Guild
}

// CorrectiveActionExecuted carries the typed outcome of a platform call.
type CorrectiveActionExecuted struct {
	Meta
	Outcome domain.Outcome
}

func (e CorrectiveActionExecuted) GuildID() domain.GuildID {
	return e.Outcome.Action.Guild
}
