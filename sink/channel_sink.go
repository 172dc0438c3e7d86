package sink

import (
	"context"
	"fmt"
	"log/slog"
	"solibot/contract"
	"solibot/domain"
	"solibot/domain/event"
	"solibot/repositories"
	"strings"
)

var _ contract.EventSink = (*AuditChannelSink)(nil)

// AuditChannelSink posts a short message to the guild's log channel for every
// restriction applied or lifted, and for corrective actions that failed.
// Guilds without a log channel are skipped.
type AuditChannelSink struct {
	log      *slog.Logger
	settings repositories.ISettingsRepository
	notifier contract.Notifier
}

func NewAuditChannelSink(log *slog.Logger, settings repositories.ISettingsRepository,
	notifier contract.Notifier) *AuditChannelSink {
	return &AuditChannelSink{log: log, settings: settings, notifier: notifier}
}

func (s *AuditChannelSink) Consume(ctx context.Context, e event.DomainEvent) error {
	content, ok := render(e)
	if !ok {
		return nil
	}
	settings, err := s.settings.Get(e.GuildID())
	if err != nil {
		return fmt.Errorf("audit post for guild %s: %w", e.GuildID(), err)
	}
	if settings.LogChannel == domain.NoChannel {
		return nil
	}
	return s.notifier.SendMessage(ctx, settings.LogChannel, content)
}

func render(e event.DomainEvent) (string, bool) {
	switch evt := e.(type) {
	case event.RestrictionApplied:
		return renderApplied(evt), true
	case event.RestrictionLifted:
		return renderLifted(evt), true
	case event.CorrectiveActionExecuted:
		if !evt.Outcome.Failed() {
			return "", false
		}
		return fmt.Sprintf("⚠️ Could not %s <@%s>: %v. Will retry on their next voice change.",
			evt.Outcome.Action.Kind, evt.Outcome.Action.User, evt.Outcome.Err), true
	default:
		return "", false
	}
}

func renderApplied(evt event.RestrictionApplied) string {
	var b strings.Builder
	switch evt.Kind {
	case domain.KindMute:
		fmt.Fprintf(&b, "🔇 <@%s> muted by <@%s>", evt.User, evt.IssuedBy)
	case domain.KindConfinement:
		fmt.Fprintf(&b, "🔒 <@%s> confined to <#%s> by <@%s>", evt.User, evt.Channel, evt.IssuedBy)
	case domain.KindBlock:
		fmt.Fprintf(&b, "🚫 <@%s> blocked from <#%s> by <@%s>", evt.User, evt.Channel, evt.IssuedBy)
	}
	if evt.Kind != domain.KindBlock {
		if evt.ExpiresAt == nil {
			b.WriteString(" (permanent)")
		} else {
			d := evt.ExpiresAt.Sub(evt.At)
			fmt.Fprintf(&b, " for %s", domain.FormatDuration(d))
		}
	}
	return b.String()
}

func renderLifted(evt event.RestrictionLifted) string {
	auto := evt.Cause == domain.LiftExpired
	switch evt.Kind {
	case domain.KindMute:
		if auto {
			return fmt.Sprintf("🔊 <@%s> automatically unmuted: mute duration expired", evt.User)
		}
		return fmt.Sprintf("🔊 <@%s> unmuted (%s left)", evt.User, domain.FormatRemaining(evt.Remaining))
	case domain.KindConfinement:
		if auto {
			return fmt.Sprintf("🔓 <@%s> automatically released from confinement: duration expired", evt.User)
		}
		return fmt.Sprintf("🔓 <@%s> released from confinement (%s left)", evt.User, domain.FormatRemaining(evt.Remaining))
	default:
		return fmt.Sprintf("✅ <@%s> unblocked from <#%s>", evt.User, evt.Channel)
	}
}
