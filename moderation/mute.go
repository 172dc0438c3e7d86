package moderation

import (
	"context"
	"solibot/domain"
	"solibot/errors"
	"time"
)

// MutePolicy manages server mutes: at most one per (guild, user).
type MutePolicy struct {
	m *Manager
}

// Create records a mute and arms its expiry. A zero duration is permanent.
// If the user is in voice the mute flag is set right away; a failed call is
// reported in the Outcome and does not undo the mute.
func (p *MutePolicy) Create(ctx context.Context, guild domain.GuildID, user domain.UserID,
	issuer domain.UserID, d time.Duration) (domain.Mute, domain.Outcome, error) {
	if d < 0 {
		return domain.Mute{}, domain.Outcome{}, errors.ErrInvalidDuration
	}
	key := domain.NewMemberKey(guild, user)

	p.m.mu.Lock()
	if _, ok := p.m.store.Mute(key); ok {
		p.m.mu.Unlock()
		return domain.Mute{}, domain.Outcome{}, errors.ErrAlreadyActive
	}
	now := p.m.clock.Now()
	gen := p.m.store.nextGeneration()
	mute := domain.Mute{
		Guild:      guild,
		User:       user,
		IssuedBy:   issuer,
		CreatedAt:  now,
		Generation: gen,
	}
	mute.ExpiresAt, mute.Timer = p.m.arm(now, d, func() { p.expire(key, gen) })
	if err := p.m.store.insertMute(mute); err != nil {
		p.m.timers.Cancel(mute.Timer)
		p.m.mu.Unlock()
		return domain.Mute{}, domain.Outcome{}, err
	}
	p.m.mu.Unlock()

	p.m.log.Info("User muted", "guild", guild, "user", user, "by", issuer,
		"duration", domain.FormatRemaining(mute.Remaining(now)))
	p.m.publishApplied(domain.KindMute, key, domain.NoChannel, issuer, mute.ExpiresAt)

	outcome := domain.Noop(domain.TriggerCreate)
	if p.m.enforcer.VoiceChannel(ctx, key) != domain.NoChannel {
		outcome = p.m.enforcer.Apply(ctx, domain.TriggerCreate, domain.SetMute(key, true, "Server mute applied"))
	}
	return mute, outcome, nil
}

// Release lifts the mute. The boolean is false when the user was not muted,
// in which case nothing is called on the platform.
func (p *MutePolicy) Release(ctx context.Context, guild domain.GuildID, user domain.UserID) (domain.Release, bool) {
	return p.teardown(ctx, domain.NewMemberKey(guild, user), domain.AnyGeneration, domain.LiftManual)
}

func (p *MutePolicy) IsActive(guild domain.GuildID, user domain.UserID) bool {
	_, ok := p.m.store.Mute(domain.NewMemberKey(guild, user))
	return ok
}

func (p *MutePolicy) Get(guild domain.GuildID, user domain.UserID) (domain.Mute, bool) {
	return p.m.store.Mute(domain.NewMemberKey(guild, user))
}

// RemainingTime returns nil for a permanent mute. The boolean is false when not muted.
func (p *MutePolicy) RemainingTime(guild domain.GuildID, user domain.UserID) (*time.Duration, bool) {
	mute, ok := p.m.store.Mute(domain.NewMemberKey(guild, user))
	if !ok {
		return nil, false
	}
	return mute.Remaining(p.m.clock.Now()), true
}

// expire is only invoked by a fired timer. A generation mismatch means the
// mute it was armed for is gone, possibly replaced: the firing is dropped.
func (p *MutePolicy) expire(key domain.MemberKey, gen domain.Generation) {
	if _, ok := p.teardown(context.Background(), key, gen, domain.LiftExpired); !ok {
		p.m.log.Debug("Stale mute timer discarded", "guild", key.Guild, "user", key.User, "generation", gen)
	}
}

// teardown is the single exit path of a mute.
func (p *MutePolicy) teardown(ctx context.Context, key domain.MemberKey,
	gen domain.Generation, cause domain.LiftCause) (domain.Release, bool) {
	p.m.mu.Lock()
	mute, ok := p.m.store.removeMute(key, gen)
	if ok {
		p.m.timers.Cancel(mute.Timer)
	}
	p.m.mu.Unlock()
	if !ok {
		return domain.Release{}, false
	}

	trigger := triggerFor(cause)
	release := domain.Release{
		Kind:      domain.KindMute,
		Guild:     key.Guild,
		User:      key.User,
		Cause:     cause,
		Remaining: mute.Remaining(p.m.clock.Now()),
		Undo:      domain.Noop(trigger),
	}
	p.m.log.Info("User unmuted", "guild", key.Guild, "user", key.User, "cause", cause)

	if p.m.enforcer.VoiceChannel(ctx, key) != domain.NoChannel {
		release.Undo = p.m.enforcer.Apply(ctx, trigger, domain.SetMute(key, false, "Server mute removed"))
	}
	p.m.publishLifted(release)
	return release, true
}
