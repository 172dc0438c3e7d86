package moderation

import (
	"context"
	"solibot/domain"
	"solibot/errors"
)

// BlockPolicy keeps users out of specific voice channels.
// A user can be blocked from any number of channels; blocks never expire.
type BlockPolicy struct {
	m *Manager
}

// Create blocks user from channel and disconnects them if they are in it right now.
func (p *BlockPolicy) Create(ctx context.Context, guild domain.GuildID, user domain.UserID,
	channel domain.ChannelID, issuer domain.UserID) (domain.Block, domain.Outcome, error) {
	if channel == domain.NoChannel {
		return domain.Block{}, domain.Outcome{}, errors.ErrMissingChannel
	}
	block := domain.Block{
		Guild:     guild,
		User:      user,
		Channel:   channel,
		IssuedBy:  issuer,
		CreatedAt: p.m.clock.Now(),
	}

	p.m.mu.Lock()
	err := p.m.store.insertBlock(block)
	p.m.mu.Unlock()
	if err != nil {
		return domain.Block{}, domain.Outcome{}, err
	}

	key := block.Key().Member()
	p.m.log.Info("User blocked from voice channel", "guild", guild, "user", user, "channel", channel, "by", issuer)
	p.m.publishApplied(domain.KindBlock, key, channel, issuer, nil)

	outcome := domain.Noop(domain.TriggerCreate)
	if p.m.enforcer.VoiceChannel(ctx, key) == channel {
		outcome = p.m.enforcer.Apply(ctx, domain.TriggerCreate, domain.Disconnect(key, "Blocked from this voice channel"))
	}
	return block, outcome, nil
}

// Release removes a single block. It returns false when there was none.
func (p *BlockPolicy) Release(guild domain.GuildID, user domain.UserID, channel domain.ChannelID) bool {
	p.m.mu.Lock()
	block, ok := p.m.store.removeBlock(domain.NewBlockKey(guild, user, channel))
	p.m.mu.Unlock()
	if !ok {
		return false
	}

	p.m.log.Info("User unblocked from voice channel", "guild", guild, "user", user, "channel", channel)
	p.m.publishLifted(domain.Release{
		Kind:    domain.KindBlock,
		Guild:   block.Guild,
		User:    block.User,
		Channel: block.Channel,
		Cause:   domain.LiftManual,
		Undo:    domain.Noop(domain.TriggerRelease),
	})
	return true
}

func (p *BlockPolicy) IsActive(guild domain.GuildID, user domain.UserID, channel domain.ChannelID) bool {
	return p.m.store.IsBlocked(domain.NewBlockKey(guild, user, channel))
}

func (p *BlockPolicy) ChannelsForUser(guild domain.GuildID, user domain.UserID) []domain.ChannelID {
	return p.m.store.BlockedChannels(domain.NewMemberKey(guild, user))
}

func (p *BlockPolicy) UsersForChannel(guild domain.GuildID, channel domain.ChannelID) []domain.UserID {
	return p.m.store.BlockedUsers(guild, channel)
}
