package moderation

import (
	"context"
	"solibot/domain"
	"solibot/errors"
	"time"
)

// ConfinementPolicy pins a user to one voice channel: at most one per (guild, user).
type ConfinementPolicy struct {
	m *Manager
}

// Create records a confinement to channel and arms its expiry. A zero duration is permanent.
// A user already in voice elsewhere is moved to the channel immediately.
func (p *ConfinementPolicy) Create(ctx context.Context, guild domain.GuildID, user domain.UserID,
	channel domain.ChannelID, issuer domain.UserID, d time.Duration) (domain.Confinement, domain.Outcome, error) {
	if channel == domain.NoChannel {
		return domain.Confinement{}, domain.Outcome{}, errors.ErrMissingChannel
	}
	if d < 0 {
		return domain.Confinement{}, domain.Outcome{}, errors.ErrInvalidDuration
	}
	key := domain.NewMemberKey(guild, user)

	p.m.mu.Lock()
	if _, ok := p.m.store.Confinement(key); ok {
		p.m.mu.Unlock()
		return domain.Confinement{}, domain.Outcome{}, errors.ErrAlreadyActive
	}
	now := p.m.clock.Now()
	gen := p.m.store.nextGeneration()
	confinement := domain.Confinement{
		Guild:      guild,
		User:       user,
		Channel:    channel,
		IssuedBy:   issuer,
		CreatedAt:  now,
		Generation: gen,
	}
	confinement.ExpiresAt, confinement.Timer = p.m.arm(now, d, func() { p.expire(key, gen) })
	if err := p.m.store.insertConfinement(confinement); err != nil {
		p.m.timers.Cancel(confinement.Timer)
		p.m.mu.Unlock()
		return domain.Confinement{}, domain.Outcome{}, err
	}
	p.m.mu.Unlock()

	p.m.log.Info("User confined", "guild", guild, "user", user, "channel", channel, "by", issuer,
		"duration", domain.FormatRemaining(confinement.Remaining(now)))
	p.m.publishApplied(domain.KindConfinement, key, channel, issuer, confinement.ExpiresAt)

	outcome := domain.Noop(domain.TriggerCreate)
	current := p.m.enforcer.VoiceChannel(ctx, key)
	if current != domain.NoChannel && current != channel {
		outcome = p.m.enforcer.Apply(ctx, domain.TriggerCreate, domain.MoveTo(key, channel, "Solitary confinement active"))
	}
	return confinement, outcome, nil
}

// Release lifts the confinement. The user is not moved: they go wherever they
// want on their next presence change.
func (p *ConfinementPolicy) Release(ctx context.Context, guild domain.GuildID, user domain.UserID) (domain.Release, bool) {
	return p.teardown(ctx, domain.NewMemberKey(guild, user), domain.AnyGeneration, domain.LiftManual)
}

func (p *ConfinementPolicy) IsActive(guild domain.GuildID, user domain.UserID) bool {
	_, ok := p.m.store.Confinement(domain.NewMemberKey(guild, user))
	return ok
}

func (p *ConfinementPolicy) Get(guild domain.GuildID, user domain.UserID) (domain.Confinement, bool) {
	return p.m.store.Confinement(domain.NewMemberKey(guild, user))
}

// RemainingTime returns nil for a permanent confinement. The boolean is false when not confined.
func (p *ConfinementPolicy) RemainingTime(guild domain.GuildID, user domain.UserID) (*time.Duration, bool) {
	confinement, ok := p.m.store.Confinement(domain.NewMemberKey(guild, user))
	if !ok {
		return nil, false
	}
	return confinement.Remaining(p.m.clock.Now()), true
}

func (p *ConfinementPolicy) expire(key domain.MemberKey, gen domain.Generation) {
	if _, ok := p.teardown(context.Background(), key, gen, domain.LiftExpired); !ok {
		p.m.log.Debug("Stale confinement timer discarded", "guild", key.Guild, "user", key.User, "generation", gen)
	}
}

// teardown is the single exit path of a confinement. There is no platform undo.
func (p *ConfinementPolicy) teardown(_ context.Context, key domain.MemberKey,
	gen domain.Generation, cause domain.LiftCause) (domain.Release, bool) {
	p.m.mu.Lock()
	confinement, ok := p.m.store.removeConfinement(key, gen)
	if ok {
		p.m.timers.Cancel(confinement.Timer)
	}
	p.m.mu.Unlock()
	if !ok {
		return domain.Release{}, false
	}

	release := domain.Release{
		Kind:      domain.KindConfinement,
		Guild:     key.Guild,
		User:      key.User,
		Channel:   confinement.Channel,
		Cause:     cause,
		Remaining: confinement.Remaining(p.m.clock.Now()),
		Undo:      domain.Noop(triggerFor(cause)),
	}
	p.m.log.Info("User released from confinement", "guild", key.Guild, "user", key.User, "cause", cause)
	p.m.publishLifted(release)
	return release, true
}
