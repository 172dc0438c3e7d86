package sink

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/domain"
	"solibot/domain/event"
)

var _ contract.EventSink = (*LogSink)(nil)

// LogSink writes one structured line per audit event.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("sink", "audit")}
}

func (s *LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.RestrictionApplied:
		s.log.InfoContext(ctx, "Restriction applied",
			"id", evt.ID, "kind", evt.Kind, "guild", evt.Guild, "user", evt.User,
			"channel", evt.Channel, "by", evt.IssuedBy, "expires_at", evt.ExpiresAt)
	case event.RestrictionLifted:
		s.log.InfoContext(ctx, "Restriction lifted",
			"id", evt.ID, "kind", evt.Kind, "guild", evt.Guild, "user", evt.User,
			"channel", evt.Channel, "cause", evt.Cause, "remaining", domain.FormatRemaining(evt.Remaining))
	case event.CorrectiveActionExecuted:
		level := slog.LevelInfo
		if evt.Outcome.Failed() {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "Corrective action",
			"id", evt.ID, "action", evt.Outcome.Action.Kind, "trigger", evt.Outcome.Trigger,
			"status", evt.Outcome.Status, "guild", evt.Outcome.Action.Guild, "user", evt.Outcome.Action.User,
			"error", evt.Outcome.Err)
	}
	return nil
}
