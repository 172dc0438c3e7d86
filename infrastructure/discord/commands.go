package discord

import (
	"context"
	"fmt"
	"log/slog"
	"solibot/domain"
	"solibot/errors"
	"solibot/services"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const noPermission = "You do not have permission to use this command."

// requiredPermission is the member permission each command needs.
var requiredPermission = map[string]int64{
	"mute":         discordgo.PermissionVoiceMuteMembers,
	"unmute":       discordgo.PermissionVoiceMuteMembers,
	"confine":      discordgo.PermissionVoiceMoveMembers,
	"release":      discordgo.PermissionVoiceMoveMembers,
	"block":        discordgo.PermissionVoiceMoveMembers,
	"unblock":      discordgo.PermissionVoiceMoveMembers,
	"restrictions": discordgo.PermissionVoiceMuteMembers,
	"setup":        discordgo.PermissionAdministrator,
}

// CommandHandler answers slash commands and the select menus of the
// confinement flow with the moderation service.
// Commands are registered out of band.
type CommandHandler struct {
	ctx     context.Context
	log     *slog.Logger
	session Session
	service *services.ModerationService
}

func NewCommandHandler(ctx context.Context, log *slog.Logger, session Session,
	service *services.ModerationService) *CommandHandler {
	return &CommandHandler{ctx: ctx, log: log, session: session, service: service}
}

func (h *CommandHandler) OnInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	var responseType discordgo.InteractionResponseType
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		responseType = discordgo.InteractionResponseChannelMessageWithSource
	case discordgo.InteractionMessageComponent:
		// The menu message is replaced by the next step.
		responseType = discordgo.InteractionResponseUpdateMessage
	default:
		return
	}
	data := h.Handle(h.ctx, i.Interaction)
	data.Flags = discordgo.MessageFlagsEphemeral
	err := h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{Type: responseType, Data: data})
	if err != nil {
		h.log.Error("Interaction response failed", "type", i.Type, "guild", i.GuildID, "error", err)
	}
}

// Handle runs one command or menu pick and returns what is shown to the moderator.
func (h *CommandHandler) Handle(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponseData {
	if i.Member == nil || i.Member.User == nil || i.GuildID == "" {
		return text("This command only works in a server.")
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return h.command(ctx, i)
	case discordgo.InteractionMessageComponent:
		return h.component(ctx, i)
	default:
		return text("Unknown command.")
	}
}

func (h *CommandHandler) command(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponseData {
	data := i.ApplicationCommandData()
	if !allowed(i.Member, data.Name) {
		return text(noPermission)
	}

	opts := parseOptions(data)
	guild := domain.GuildID(i.GuildID)
	req := services.Request{
		Guild:       guild,
		Issuer:      domain.UserID(i.Member.User.ID),
		Target:      opts.user,
		TargetIsBot: opts.userIsBot,
	}

	var (
		reply string
		err   error
	)
	switch data.Name {
	case "mute":
		reply, err = h.service.Mute(ctx, req, opts.minutes)
	case "unmute":
		reply, err = h.service.Unmute(ctx, req)
	case "confine":
		return h.confine(ctx, req, opts)
	case "release":
		reply, err = h.service.ReleaseConfinement(ctx, req)
	case "block":
		reply, err = h.service.Block(ctx, req, opts.channel)
	case "unblock":
		reply, err = h.service.Unblock(req, opts.channel)
	case "restrictions":
		reply = h.service.Status(guild, opts.user)
	case "setup":
		reply, err = h.service.Setup(guild, opts.channel, opts.logChannel)
	default:
		return text("Unknown command.")
	}
	return h.respond(data.Name, guild, reply, err)
}

// confine opens the selection flow. Choices given with the command skip their
// menu. Without an explicit duration the duration menu is always shown, so a
// permanent confinement is only ever picked on purpose.
func (h *CommandHandler) confine(ctx context.Context, req services.Request, opts commandOptions) *discordgo.InteractionResponseData {
	reply, needsChannel, err := h.service.BeginConfinement(ctx, req)
	if err != nil {
		return h.respond("confine", req.Guild, "", err)
	}
	if opts.channel != domain.NoChannel {
		if reply, err = h.service.SelectConfinementChannel(req.Guild, req.Target, opts.channel); err != nil {
			return h.respond("confine", req.Guild, "", err)
		}
	} else if needsChannel {
		return withMenu(reply, channelMenu(req.Target))
	}
	if !opts.hasMinutes {
		return withMenu(reply, durationMenu(req.Target))
	}
	reply, err = h.service.ConfirmConfinement(ctx, req.Guild, req.Target, opts.minutes)
	return h.respond("confine", req.Guild, reply, err)
}

// component routes a menu pick by its custom ID, which carries the target.
func (h *CommandHandler) component(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponseData {
	if !allowed(i.Member, "confine") {
		return text(noPermission)
	}
	data := i.MessageComponentData()
	guild := domain.GuildID(i.GuildID)
	var value string
	if len(data.Values) > 0 {
		value = data.Values[0]
	}

	if target, ok := strings.CutPrefix(data.CustomID, confineChannelPrefix); ok {
		reply, err := h.service.SelectConfinementChannel(guild, domain.UserID(target), domain.ChannelID(value))
		if err != nil {
			return h.respond("confine", guild, "", err)
		}
		return withMenu(reply, durationMenu(domain.UserID(target)))
	}
	if target, ok := strings.CutPrefix(data.CustomID, confineDurationPrefix); ok {
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return h.respond("confine", guild, "", fmt.Errorf("%w: %q", errors.ErrInvalidDuration, value))
		}
		reply, err := h.service.ConfirmConfinement(ctx, guild, domain.UserID(target), time.Duration(minutes)*time.Minute)
		return h.respond("confine", guild, reply, err)
	}
	return text("Unknown command.")
}

func (h *CommandHandler) respond(command string, guild domain.GuildID, reply string, err error) *discordgo.InteractionResponseData {
	if err != nil {
		h.log.Debug("Command refused", "command", command, "guild", guild, "error", err)
		return text(services.Describe(err))
	}
	return text(reply)
}

// allowed is true for administrators and members holding the command's permission.
func allowed(member *discordgo.Member, command string) bool {
	perm, ok := requiredPermission[command]
	return !ok || member.Permissions&(perm|discordgo.PermissionAdministrator) != 0
}

type commandOptions struct {
	user       domain.UserID
	userIsBot  bool
	channel    domain.ChannelID
	logChannel domain.ChannelID
	minutes    time.Duration
	hasMinutes bool
}

func parseOptions(data discordgo.ApplicationCommandInteractionData) commandOptions {
	var opts commandOptions
	for _, opt := range data.Options {
		switch opt.Name {
		case "user":
			u := opt.UserValue(nil)
			opts.user = domain.UserID(u.ID)
			if data.Resolved != nil {
				if resolved, ok := data.Resolved.Users[u.ID]; ok {
					opts.userIsBot = resolved.Bot
				}
			}
		case "channel":
			opts.channel = domain.ChannelID(opt.ChannelValue(nil).ID)
		case "log_channel":
			opts.logChannel = domain.ChannelID(opt.ChannelValue(nil).ID)
		case "minutes":
			opts.minutes = time.Duration(opt.IntValue()) * time.Minute
			opts.hasMinutes = true
		}
	}
	return opts
}
