package workers

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/domain"
)

// Ensure *PresenceWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PresenceWorker)(nil)

// PresenceWorker drains one dispatcher shard and reconciles each change in order.
type PresenceWorker struct {
	log        *slog.Logger
	changes    <-chan domain.PresenceChange
	reconciler contract.PresenceReconciler
}

func NewPresenceWorker(log *slog.Logger, changes <-chan domain.PresenceChange,
	reconciler contract.PresenceReconciler) *PresenceWorker {
	return &PresenceWorker{log: log, changes: changes, reconciler: reconciler}
}

func (w *PresenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping presence worker")
			return ctx.Err()
		case change, ok := <-w.changes:
			if !ok {
				w.log.Debug("Presence channel is closed")
				return nil
			}
			outcome := w.reconciler.Reconcile(ctx, change)
			if outcome.Failed() {
				// Registries are unchanged: the next presence change retries.
				w.log.Debug("Correction will be retried on next presence change",
					"guild", change.Guild, "user", change.User, "action", outcome.Action.Kind)
			}
		}
	}
}
