package moderation

import (
	"context"
	"log/slog"
	"solibot/domain"
)

// Reconciler corrects a user's voice presence after every platform notification.
// At most one action is executed per change: the first evaluator with
// something to say wins, the rest are not consulted.
type Reconciler struct {
	log        *slog.Logger
	evaluators []Evaluator
	enforcer   *Enforcer
}

func NewReconciler(log *slog.Logger, enforcer *Enforcer, evaluators ...Evaluator) *Reconciler {
	return &Reconciler{log: log, enforcer: enforcer, evaluators: evaluators}
}

// Resolve folds over the evaluators in order. The returned name is the
// evaluator that produced the action, empty when none did.
func (r *Reconciler) Resolve(change domain.PresenceChange) (domain.Action, string) {
	for _, e := range r.evaluators {
		if action := e.Evaluate(change); action.Kind != domain.ActionNone {
			return action, e.Name()
		}
	}
	return domain.NoAction, ""
}

// Reconcile resolves the change and executes the chosen action.
// Registries are only read: platform failures never alter them.
func (r *Reconciler) Reconcile(ctx context.Context, change domain.PresenceChange) domain.Outcome {
	action, by := r.Resolve(change)
	if action.Kind == domain.ActionNone {
		return domain.Noop(domain.TriggerPresence)
	}
	r.log.Debug("Presence change resolved",
		"guild", change.Guild, "user", change.User,
		"before", change.Before, "after", change.After,
		"evaluator", by, "action", action.Kind)
	return r.enforcer.Apply(ctx, domain.TriggerPresence, action)
}
