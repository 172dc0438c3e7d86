// Package moderation is the voice-presence restriction engine.
//
// It owns three in-memory registries (mute, confinement, block), the timers
// that expire them, and the reconciler that corrects a user's voice presence
// every time the platform reports a change.
package moderation

import (
	"log/slog"
	"solibot/contract"
	"solibot/domain"
	"solibot/domain/event"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Manager is the only writer of the Store.
//
// Every registry mutation and every timer arm/cancel happens under mu, which
// plays the role of a single-threaded scheduler. Platform calls are always made
// after mu is released: the registry change is the truth, the call only tries
// to make the platform agree with it.
type Manager struct {
	mu        sync.Mutex
	log       *slog.Logger
	store     *Store
	timers    *Timers
	clock     clock.Clock
	enforcer  *Enforcer
	publisher contract.EventPublisher

	Mutes        *MutePolicy
	Confinements *ConfinementPolicy
	Blocks       *BlockPolicy
}

func NewManager(log *slog.Logger, store *Store, timers *Timers, enforcer *Enforcer,
	publisher contract.EventPublisher, clk clock.Clock) *Manager {
	m := &Manager{
		log:       log,
		store:     store,
		timers:    timers,
		clock:     clk,
		enforcer:  enforcer,
		publisher: publisher,
	}
	m.Mutes = &MutePolicy{m: m}
	m.Confinements = &ConfinementPolicy{m: m}
	m.Blocks = &BlockPolicy{m: m}
	return m
}

// Reader exposes the registries read-only, for the reconciler.
func (m *Manager) Reader() contract.RestrictionReader {
	return m.store
}

func (m *Manager) Snapshot() Snapshot {
	return m.store.Snapshot()
}

// LiveTimers returns how many expiry timers are armed.
func (m *Manager) LiveTimers() int {
	return m.timers.Live()
}

// Shutdown drops every armed timer. Registries are discarded with the process.
func (m *Manager) Shutdown() {
	m.timers.Stop()
	m.log.Info("Restriction timers discarded")
}

// arm computes the expiry of a new record and schedules onExpire.
// A zero duration is permanent: no expiry, no timer.
// Must be called with mu held.
func (m *Manager) arm(now time.Time, d time.Duration, onExpire func()) (*time.Time, domain.TimerHandle) {
	if d == 0 {
		return nil, 0
	}
	at := now.Add(d)
	return &at, m.timers.Schedule(d, onExpire)
}

func (m *Manager) publishApplied(kind domain.Kind, key domain.MemberKey, channel domain.ChannelID,
	issuer domain.UserID, expiresAt *time.Time) {
	m.publisher.Publish(event.RestrictionApplied{
		Meta:      event.NewMeta(m.clock.Now()),
		Kind:      kind,
		Guild:     key.Guild,
		User:      key.User,
		Channel:   channel,
		IssuedBy:  issuer,
		ExpiresAt: expiresAt,
	})
}

func (m *Manager) publishLifted(release domain.Release) {
	m.publisher.Publish(event.RestrictionLifted{
		Meta:      event.NewMeta(m.clock.Now()),
		Kind:      release.Kind,
		Guild:     release.Guild,
		User:      release.User,
		Channel:   release.Channel,
		Cause:     release.Cause,
		Remaining: release.Remaining,
	})
}

func triggerFor(cause domain.LiftCause) domain.Trigger {
	if cause == domain.LiftExpired {
		return domain.TriggerExpire
	}
	return domain.TriggerRelease
}
