// Package projection builds read models from observed audit events.
// It does not emit events nor touch the registries.
package projection

import (
	"context"
	"solibot/contract"
	"solibot/domain"
	"solibot/domain/event"
	"sync"
	"time"
)

var _ contract.EventSink = (*Ledger)(nil)

// Entry is one line of the recent history.
type Entry struct {
	At     time.Time
	Guild  domain.GuildID
	User   domain.UserID
	Kind   domain.Kind
	Action string
}

// Ledger counts restrictions and corrective outcomes and keeps the last
// entries, for the debug endpoint.
type Ledger struct {
	mu       sync.Mutex
	capacity int
	applied  map[domain.Kind]int
	lifted   map[domain.LiftCause]int
	outcomes map[domain.Status]int
	recent   []Entry
}

func NewLedger(capacity int) *Ledger {
	return &Ledger{
		capacity: capacity,
		applied:  make(map[domain.Kind]int),
		lifted:   make(map[domain.LiftCause]int),
		outcomes: make(map[domain.Status]int),
	}
}

func (l *Ledger) Consume(_ context.Context, e event.DomainEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch evt := e.(type) {
	case event.RestrictionApplied:
		l.applied[evt.Kind]++
		l.push(Entry{At: evt.At, Guild: evt.Guild, User: evt.User, Kind: evt.Kind, Action: "applied"})
	case event.RestrictionLifted:
		l.lifted[evt.Cause]++
		l.push(Entry{At: evt.At, Guild: evt.Guild, User: evt.User, Kind: evt.Kind, Action: "lifted:" + string(evt.Cause)})
	case event.CorrectiveActionExecuted:
		l.outcomes[evt.Outcome.Status]++
	}
	return nil
}

// push keeps at most capacity entries, oldest first.
func (l *Ledger) push(e Entry) {
	if l.capacity <= 0 {
		return
	}
	if len(l.recent) == l.capacity {
		l.recent = append(l.recent[:0], l.recent[1:]...)
	}
	l.recent = append(l.recent, e)
}

func (l *Ledger) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.recent...)
}

// Stats flattens the counters for display.
func (l *Ledger) Stats() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := make(map[string]int)
	for kind, n := range l.applied {
		stats["applied_"+string(kind)] = n
	}
	for cause, n := range l.lifted {
		stats["lifted_"+string(cause)] = n
	}
	for status, n := range l.outcomes {
		stats["outcome_"+status.String()] = n
	}
	return stats
}
