package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"solibot/domain"
	"solibot/errors"
	"solibot/moderation"
	"solibot/repositories"
	"solibot/storage"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// MuteDurations are the choices offered when muting.
var MuteDurations = []time.Duration{
	1 * time.Minute, 5 * time.Minute, 10 * time.Minute, 30 * time.Minute, 60 * time.Minute,
}

// ConfinementDurations are the choices offered when confining. Zero is permanent.
var ConfinementDurations = []time.Duration{
	5 * time.Minute, 15 * time.Minute, 30 * time.Minute, 60 * time.Minute, 120 * time.Minute, 0,
}

const retryNotice = "\n⚠️ The restriction is recorded but could not be enforced right now. " +
	"It will be enforced on their next voice change."

// Request identifies who acts on whom.
type Request struct {
	Guild       domain.GuildID `validate:"required,max=32"`
	Issuer      domain.UserID  `validate:"required,max=32"`
	Target      domain.UserID  `validate:"required,max=32"`
	TargetIsBot bool
}

// ModerationService is what command handlers call. It validates requests,
// drives the restriction engine and renders human-readable replies.
type ModerationService struct {
	log      *slog.Logger
	manager  *moderation.Manager
	settings repositories.ISettingsRepository
	pending  *storage.TTLCache[domain.PendingKey, domain.PendingSelection]
	clock    clock.Clock
	creator  domain.UserID
}

func NewModerationService(log *slog.Logger, manager *moderation.Manager, settings repositories.ISettingsRepository,
	pending *storage.TTLCache[domain.PendingKey, domain.PendingSelection], clk clock.Clock,
	creator domain.UserID) *ModerationService {
	return &ModerationService{
		log:      log,
		manager:  manager,
		settings: settings,
		pending:  pending,
		clock:    clk,
		creator:  creator,
	}
}

func (s *ModerationService) Mute(ctx context.Context, req Request, d time.Duration) (string, error) {
	if err := s.check(req); err != nil {
		return "", err
	}
	if !slices.Contains(MuteDurations, d) {
		return "", fmt.Errorf("%w: %s is not an offered mute duration", errors.ErrInvalidDuration, d)
	}
	mute, outcome, err := s.manager.Mutes.Create(ctx, req.Guild, req.Target, req.Issuer, d)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("🔇 <@%s> has been muted for %s", req.Target, domain.FormatRemaining(mute.Remaining(s.clock.Now())))
	return withOutcome(reply, outcome), nil
}

func (s *ModerationService) Unmute(ctx context.Context, req Request) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	release, ok := s.manager.Mutes.Release(ctx, req.Guild, req.Target)
	if !ok {
		return fmt.Sprintf("<@%s> is not muted.", req.Target), nil
	}
	reply := fmt.Sprintf("🔊 <@%s> has been unmuted (%s)", req.Target, leftOf(release.Remaining))
	if release.Undo.Failed() {
		reply += "\n⚠️ Their server mute flag could not be removed. Unmute them by hand if needed."
	}
	return reply, nil
}

// BeginConfinement opens the two-step flow. The returned bool tells whether a
// channel still has to be picked; with a default confinement channel it is
// preselected.
func (s *ModerationService) BeginConfinement(ctx context.Context, req Request) (string, bool, error) {
	if err := s.check(req); err != nil {
		return "", false, err
	}
	if s.manager.Confinements.IsActive(req.Guild, req.Target) {
		return "", false, fmt.Errorf("%w: <@%s> is already in solitary confinement", errors.ErrAlreadyActive, req.Target)
	}
	settings, err := s.settings.Get(req.Guild)
	if err != nil {
		return "", false, err
	}

	selection := domain.PendingSelection{
		Guild:     req.Guild,
		Target:    req.Target,
		Issuer:    req.Issuer,
		Channel:   settings.ConfinementChannel,
		CreatedAt: s.clock.Now(),
	}
	s.pending.Set(selection.Key(), selection)

	if settings.HasDefaultConfinement() {
		return fmt.Sprintf("Confining <@%s> to <#%s>. Select confinement duration.", req.Target, settings.ConfinementChannel), false, nil
	}
	return fmt.Sprintf("Select a voice channel to confine <@%s> to.\n"+
		"Tip: use /setup to set a default confinement channel.", req.Target), true, nil
}

func (s *ModerationService) SelectConfinementChannel(guild domain.GuildID, target domain.UserID,
	channel domain.ChannelID) (string, error) {
	if channel == domain.NoChannel {
		return "", errors.ErrMissingChannel
	}
	key := domain.PendingKey{Guild: guild, Target: target}
	selection, ok := s.pending.Get(key)
	if !ok {
		return "", errors.ErrSessionExpired
	}
	selection.Channel = channel
	s.pending.Set(key, selection)
	return fmt.Sprintf("Channel selected: <#%s>. Select confinement duration.", channel), nil
}

// ConfirmConfinement closes the flow and creates the confinement.
func (s *ModerationService) ConfirmConfinement(ctx context.Context, guild domain.GuildID, target domain.UserID,
	d time.Duration) (string, error) {
	if !slices.Contains(ConfinementDurations, d) {
		return "", fmt.Errorf("%w: %s is not an offered confinement duration", errors.ErrInvalidDuration, d)
	}
	selection, ok := s.pending.Take(domain.PendingKey{Guild: guild, Target: target})
	if !ok {
		return "", errors.ErrSessionExpired
	}
	if selection.Channel == domain.NoChannel {
		return "", errors.ErrMissingChannel
	}

	confinement, outcome, err := s.manager.Confinements.Create(ctx, guild, target, selection.Channel, selection.Issuer, d)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("🔒 <@%s> has been sent to solitary confinement in <#%s>\nDuration: %s",
		target, selection.Channel, domain.FormatRemaining(confinement.Remaining(s.clock.Now())))
	if confinement.Permanent() {
		reply += "\nStatus: Permanent until released"
	}
	return withOutcome(reply, outcome), nil
}

func (s *ModerationService) ReleaseConfinement(ctx context.Context, req Request) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	release, ok := s.manager.Confinements.Release(ctx, req.Guild, req.Target)
	if !ok {
		return fmt.Sprintf("<@%s> is not in solitary confinement.", req.Target), nil
	}
	return fmt.Sprintf("🔓 <@%s> has been released from solitary confinement (%s)",
		req.Target, leftOf(release.Remaining)), nil
}

func (s *ModerationService) Block(ctx context.Context, req Request, channel domain.ChannelID) (string, error) {
	if err := s.check(req); err != nil {
		return "", err
	}
	_, outcome, err := s.manager.Blocks.Create(ctx, req.Guild, req.Target, channel, req.Issuer)
	if err != nil {
		return "", err
	}
	return withOutcome(fmt.Sprintf("🚫 <@%s> is now blocked from <#%s>", req.Target, channel), outcome), nil
}

func (s *ModerationService) Unblock(req Request, channel domain.ChannelID) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if !s.manager.Blocks.Release(req.Guild, req.Target, channel) {
		return fmt.Sprintf("<@%s> is not blocked from <#%s>.", req.Target, channel), nil
	}
	return fmt.Sprintf("✅ <@%s> is no longer blocked from <#%s>", req.Target, channel), nil
}

// Status summarizes every restriction on a user.
func (s *ModerationService) Status(guild domain.GuildID, user domain.UserID) string {
	var lines []string
	if remaining, ok := s.manager.Mutes.RemainingTime(guild, user); ok {
		lines = append(lines, "🔇 Muted: "+domain.FormatRemaining(remaining))
	}
	if confinement, ok := s.manager.Confinements.Get(guild, user); ok {
		lines = append(lines, fmt.Sprintf("🔒 Confined to <#%s>: %s",
			confinement.Channel, domain.FormatRemaining(confinement.Remaining(s.clock.Now()))))
	}
	if channels := s.manager.Blocks.ChannelsForUser(guild, user); len(channels) > 0 {
		lines = append(lines, "🚫 Blocked from: "+strings.Join(lo.Map(channels, func(c domain.ChannelID, _ int) string {
			return "<#" + string(c) + ">"
		}), ", "))
	}
	if len(lines) == 0 {
		return fmt.Sprintf("<@%s> has no active restriction.", user)
	}
	return strings.Join(lines, "\n")
}

// Setup stores the default confinement channel and, when given, the log channel.
func (s *ModerationService) Setup(guild domain.GuildID, confinement, logChannel domain.ChannelID) (string, error) {
	if confinement == domain.NoChannel {
		return "", errors.ErrMissingChannel
	}
	if err := s.settings.SetConfinementChannel(guild, confinement); err != nil {
		return "", err
	}
	logLine := "Not set"
	if logChannel != domain.NoChannel {
		if err := s.settings.SetLogChannel(guild, logChannel); err != nil {
			return "", err
		}
		logLine = "<#" + string(logChannel) + ">"
	}
	s.log.Info("Guild setup complete", "guild", guild, "confinement_channel", confinement, "log_channel", logChannel)
	return fmt.Sprintf("✅ Setup complete\nConfinement channel: <#%s>\nLog channel: %s", confinement, logLine), nil
}

// check rejects invalid requests and protected targets before anything is recorded.
func (s *ModerationService) check(req Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	switch {
	case req.Target == req.Issuer:
		return errors.ErrSelfTarget
	case s.creator != "" && req.Target == s.creator:
		return errors.ErrProtectedTarget
	case req.TargetIsBot:
		return errors.ErrBotTarget
	}
	return nil
}

func leftOf(remaining *time.Duration) string {
	if remaining == nil {
		return "was permanent"
	}
	return domain.FormatRemaining(remaining) + " left"
}

func withOutcome(reply string, outcome domain.Outcome) string {
	if outcome.Failed() {
		return reply + retryNotice
	}
	return reply
}

// Describe turns an error returned by the service into the reply shown to the moderator.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, errors.ErrSelfTarget):
		return "You cannot target yourself!"
	case stderrors.Is(err, errors.ErrProtectedTarget):
		return "You cannot target the bot creator!"
	case stderrors.Is(err, errors.ErrBotTarget):
		return "You cannot target bots!"
	case stderrors.Is(err, errors.ErrAlreadyActive):
		return "This user is already restricted that way."
	case stderrors.Is(err, errors.ErrAlreadyBlocked):
		return "This user is already blocked from that channel."
	case stderrors.Is(err, errors.ErrSessionExpired):
		return "Session expired. Please try again."
	case stderrors.Is(err, errors.ErrMissingChannel):
		return "Please pick a voice channel."
	case stderrors.Is(err, errors.ErrInvalidDuration):
		return "Please pick one of the offered durations."
	default:
		return "Something went wrong, please try again."
	}
}
