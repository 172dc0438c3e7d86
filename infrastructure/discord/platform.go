// Package discord adapts a discordgo session to the moderation contracts.
package discord

import (
	"context"
	stderrors "errors"
	"log/slog"
	"solibot/contract"
	"solibot/domain"

	"github.com/bwmarrin/discordgo"
)

var (
	_ contract.Platform = (*Platform)(nil)
	_ contract.Notifier = (*Platform)(nil)
)

// Session is the part of *discordgo.Session the bot calls.
type Session interface {
	GuildMemberMove(guildID string, userID string, channelID *string, options ...discordgo.RequestOption) error
	GuildMemberMute(guildID string, userID string, mute bool, options ...discordgo.RequestOption) error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
}

// VoiceStates is satisfied by *discordgo.State, fed by the gateway.
type VoiceStates interface {
	VoiceState(guildID, userID string) (*discordgo.VoiceState, error)
}

// Platform executes corrective actions through the REST API.
// Every call carries the caller's context and an audit log reason.
type Platform struct {
	log     *slog.Logger
	session Session
	states  VoiceStates
}

func NewPlatform(log *slog.Logger, session Session, states VoiceStates) *Platform {
	return &Platform{log: log, session: session, states: states}
}

// Disconnect moves the member to no channel, which kicks them from voice.
func (p *Platform) Disconnect(ctx context.Context, guild domain.GuildID, user domain.UserID, reason string) error {
	err := p.session.GuildMemberMove(string(guild), string(user), nil, options(ctx, reason)...)
	return translate(err)
}

func (p *Platform) MoveToChannel(ctx context.Context, guild domain.GuildID, user domain.UserID,
	channel domain.ChannelID, reason string) error {
	target := string(channel)
	err := p.session.GuildMemberMove(string(guild), string(user), &target, options(ctx, reason)...)
	return translate(err)
}

func (p *Platform) SetMute(ctx context.Context, guild domain.GuildID, user domain.UserID, muted bool, reason string) error {
	err := p.session.GuildMemberMute(string(guild), string(user), muted, options(ctx, reason)...)
	return translate(err)
}

// VoiceChannel reads the gateway state cache, so it never hits the API.
func (p *Platform) VoiceChannel(_ context.Context, guild domain.GuildID, user domain.UserID) (domain.ChannelID, error) {
	state, err := p.states.VoiceState(string(guild), string(user))
	switch {
	case stderrors.Is(err, discordgo.ErrStateNotFound):
		return domain.NoChannel, nil
	case err != nil:
		return domain.NoChannel, translate(err)
	case state == nil:
		return domain.NoChannel, nil
	}
	return domain.ChannelID(state.ChannelID), nil
}

func (p *Platform) SendMessage(ctx context.Context, channel domain.ChannelID, content string) error {
	_, err := p.session.ChannelMessageSend(string(channel), content, discordgo.WithContext(ctx))
	return translate(err)
}

func options(ctx context.Context, reason string) []discordgo.RequestOption {
	opts := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		opts = append(opts, discordgo.WithAuditLogReason(reason))
	}
	return opts
}
