package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"solibot/contract"
	"solibot/domain"
	"solibot/errors"
	"solibot/runtime/workers"
	"time"

	"github.com/cespare/xxhash/v2"
)

var _ contract.PresenceDispatcher = (*Dispatcher)(nil)

// Dispatcher routes presence changes onto a fixed number of shards.
//
// The same (guild, user) always lands on the same shard and each shard is
// drained by a single worker, so changes of one user are reconciled one at a
// time in platform delivery order. Different users proceed in parallel.
type Dispatcher struct {
	log     *slog.Logger
	shards  []chan domain.PresenceChange
	timeout time.Duration
}

func NewDispatcher(log *slog.Logger, shards, bufferSize int, timeout time.Duration) *Dispatcher {
	if shards < 1 {
		shards = 1
	}
	d := &Dispatcher{log: log, timeout: timeout}
	for range shards {
		d.shards = append(d.shards, make(chan domain.PresenceChange, bufferSize))
	}
	return d
}

// Dispatch enqueues the change on its shard. It blocks while the shard is full,
// at most for the dispatch timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, change domain.PresenceChange) error {
	shard := d.shards[d.shardOf(change.Key())]

	select {
	case shard <- change:
		return nil
	default:
	}

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()
	select {
	case shard <- change:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		d.log.Warn("Presence change dropped", "guild", change.Guild, "user", change.User)
		return fmt.Errorf("%w: guild %s user %s", errors.ErrDispatchTimeout, change.Guild, change.User)
	}
}

// Workers builds one presence worker per shard.
func (d *Dispatcher) Workers(reconciler contract.PresenceReconciler) []contract.Worker {
	res := make([]contract.Worker, 0, len(d.shards))
	for i, shard := range d.shards {
		res = append(res, workers.NewPresenceWorker(d.log.With("shard", i), shard, reconciler))
	}
	return res
}

func (d *Dispatcher) shardOf(key domain.MemberKey) int {
	h := xxhash.New()
	_, _ = h.WriteString(string(key.Guild))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(key.User))
	return int(h.Sum64() % uint64(len(d.shards)))
}
