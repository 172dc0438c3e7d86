package moderation

import (
	"context"
	stderrors "errors"
	"log/slog"
	"solibot/contract"
	"solibot/domain"
	"solibot/domain/event"
	"solibot/errors"
	"time"

	"github.com/benbjohnson/clock"
)

// Enforcer performs corrective actions against the platform and turns every
// call into a typed Outcome. It never touches the registries: a failed call
// leaves the restriction in place and the next presence event retries.
type Enforcer struct {
	log       *slog.Logger
	platform  contract.Platform
	publisher contract.EventPublisher
	clock     clock.Clock
	timeout   time.Duration
}

func NewEnforcer(log *slog.Logger, platform contract.Platform,
	publisher contract.EventPublisher, clk clock.Clock, timeout time.Duration) *Enforcer {
	return &Enforcer{log: log, platform: platform, publisher: publisher, clock: clk, timeout: timeout}
}

// Apply executes one action. ActionNone and ActionAudit never reach the platform.
func (e *Enforcer) Apply(ctx context.Context, trigger domain.Trigger, action domain.Action) domain.Outcome {
	outcome := domain.Outcome{Action: action, Trigger: trigger}

	switch action.Kind {
	case domain.ActionNone:
		outcome.Status = domain.StatusNoop
		return outcome
	case domain.ActionAudit:
		outcome.Status = domain.StatusNoop
		e.log.Info("Presence observed", "guild", action.Guild, "user", action.User, "reason", action.Reason)
		e.publish(outcome)
		return outcome
	}

	callCtx, cancel := e.withTimeout(ctx)
	defer cancel()

	err := e.call(callCtx, action)
	switch {
	case err == nil:
		outcome.Status = domain.StatusApplied
		e.log.Info("Corrective action applied",
			"action", action.Kind, "trigger", trigger,
			"guild", action.Guild, "user", action.User, "channel", action.Channel)
	case stderrors.Is(err, errors.ErrUserNotInVoice):
		// The user disconnected between the notification and the call.
		outcome.Status = domain.StatusUserLeftVoice
		e.log.Info("User left voice before corrective action",
			"action", action.Kind, "guild", action.Guild, "user", action.User)
	default:
		outcome.Status = domain.StatusFailed
		outcome.Err = err
		e.log.Error("Corrective action failed",
			"action", action.Kind, "trigger", trigger,
			"guild", action.Guild, "user", action.User, "error", err)
	}
	e.publish(outcome)
	return outcome
}

// VoiceChannel asks the platform where the user currently is.
// Errors are logged and reported as NoChannel: creation never fails on a lookup.
func (e *Enforcer) VoiceChannel(ctx context.Context, key domain.MemberKey) domain.ChannelID {
	callCtx, cancel := e.withTimeout(ctx)
	defer cancel()

	channel, err := e.platform.VoiceChannel(callCtx, key.Guild, key.User)
	if err != nil {
		e.log.Warn("Voice lookup failed", "guild", key.Guild, "user", key.User, "error", err)
		return domain.NoChannel
	}
	return channel
}

func (e *Enforcer) call(ctx context.Context, action domain.Action) error {
	switch action.Kind {
	case domain.ActionDisconnect:
		return e.platform.Disconnect(ctx, action.Guild, action.User, action.Reason)
	case domain.ActionMove:
		return e.platform.MoveToChannel(ctx, action.Guild, action.User, action.Channel, action.Reason)
	case domain.ActionMute:
		return e.platform.SetMute(ctx, action.Guild, action.User, true, action.Reason)
	case domain.ActionUnmute:
		return e.platform.SetMute(ctx, action.Guild, action.User, false, action.Reason)
	default:
		return nil
	}
}

func (e *Enforcer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

func (e *Enforcer) publish(outcome domain.Outcome) {
	e.publisher.Publish(event.CorrectiveActionExecuted{
		Meta:    event.NewMeta(e.clock.Now()),
		Outcome: outcome,
	})
}
