package discord

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/domain"

	"github.com/bwmarrin/discordgo"
)

// PresenceHandler forwards gateway voice state updates to the dispatcher.
// discordgo handlers carry no context, the one given at construction is used.
type PresenceHandler struct {
	ctx        context.Context
	log        *slog.Logger
	dispatcher contract.PresenceDispatcher
}

func NewPresenceHandler(ctx context.Context, log *slog.Logger, dispatcher contract.PresenceDispatcher) *PresenceHandler {
	return &PresenceHandler{ctx: ctx, log: log, dispatcher: dispatcher}
}

func (h *PresenceHandler) OnVoiceStateUpdate(_ *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	change, ok := ToPresenceChange(v)
	if !ok {
		return
	}
	if err := h.dispatcher.Dispatch(h.ctx, change); err != nil {
		h.log.Warn("Presence change dropped", "guild", change.Guild, "user", change.User, "error", err)
	}
}

// ToPresenceChange keeps updates of humans whose channel occupancy is known.
// Bots are never restricted and are skipped.
func ToPresenceChange(v *discordgo.VoiceStateUpdate) (domain.PresenceChange, bool) {
	if v == nil || v.VoiceState == nil {
		return domain.PresenceChange{}, false
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return domain.PresenceChange{}, false
	}
	change := domain.PresenceChange{
		Guild: domain.GuildID(v.GuildID),
		User:  domain.UserID(v.UserID),
		After: domain.ChannelID(v.ChannelID),
	}
	if v.BeforeUpdate != nil {
		change.Before = domain.ChannelID(v.BeforeUpdate.ChannelID)
	}
	if change.Before == domain.NoChannel && change.After == domain.NoChannel {
		return domain.PresenceChange{}, false
	}
	return change, true
}
