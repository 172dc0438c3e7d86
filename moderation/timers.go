package moderation

import (
	"solibot/domain"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Timers schedules one-shot callbacks and lets them be cancelled before they fire.
//
// The live map is the only source of truth for "is this handle still armed".
// A firing timer must claim its handle (remove it from the map) before running
// its callback, and Cancel removes it too, so whichever comes first wins and the
// callback runs at most once.
type Timers struct {
	mu    sync.Mutex
	clock clock.Clock
	next  domain.TimerHandle
	live  map[domain.TimerHandle]*clock.Timer
}

func NewTimers(clk clock.Clock) *Timers {
	return &Timers{
		clock: clk,
		live:  make(map[domain.TimerHandle]*clock.Timer),
	}
}

// Schedule arms fn to run once, asynchronously, no earlier than d from now.
func (t *Timers) Schedule(d time.Duration, fn func()) domain.TimerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	handle := t.next
	// The callback blocks on t.mu until the entry below is stored.
	t.live[handle] = t.clock.AfterFunc(d, func() {
		if t.claim(handle) {
			fn()
		}
	})
	return handle
}

// Cancel disarms a handle. It returns false, and does nothing, when the handle
// already fired, was already cancelled, or was never issued.
func (t *Timers) Cancel(handle domain.TimerHandle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer, ok := t.live[handle]
	if !ok {
		return false
	}
	delete(t.live, handle)
	timer.Stop()
	return true
}

// Live returns the number of armed timers.
func (t *Timers) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Stop disarms every timer. Used on shutdown: restrictions are not persisted.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for handle, timer := range t.live {
		timer.Stop()
		delete(t.live, handle)
	}
}

func (t *Timers) claim(handle domain.TimerHandle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.live[handle]; !ok {
		return false
	}
	delete(t.live, handle)
	return true
}
