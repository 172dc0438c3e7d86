// Package runtime wires the restriction engine to its workers: presence
// dispatch, event fanout and housekeeping.
// It orchestrates the system without containing business logic or moderation rules.
package runtime

import (
	"context"
	"log/slog"
	"solibot/contract"
	"solibot/moderation"
	"solibot/runtime/workers"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type Options struct {
	Shards          int
	BufferSize      int
	SinkTimeout     time.Duration
	ActionTimeout   time.Duration
	DispatchTimeout time.Duration
	JanitorInterval time.Duration
	// ReportInterval of zero disables the periodic stats line.
	ReportInterval  time.Duration
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	clock      clock.Clock
	opts       Options
	supervisor contract.ISupervisor
	bus        *EventBus
	dispatcher *Dispatcher
	manager    *moderation.Manager
	reconciler *moderation.Reconciler
	sinks      []contract.EventSink
	evictors   []contract.Evictor
}

// NewOrchestrator builds the engine around platform. Nothing runs before Start.
func NewOrchestrator(log *slog.Logger, clk clock.Clock, supervisor contract.ISupervisor,
	platform contract.Platform, opts Options) *Orchestrator {
	bus := NewEventBus(log, opts.BufferSize)
	enforcer := moderation.NewEnforcer(log, platform, bus, clk, opts.ActionTimeout)
	manager := moderation.NewManager(log, moderation.NewStore(), moderation.NewTimers(clk), enforcer, bus, clk)
	reconciler := moderation.NewReconciler(log, enforcer, moderation.DefaultEvaluators(manager.Reader())...)

	return &Orchestrator{
		log:        log,
		clock:      clk,
		opts:       opts,
		supervisor: supervisor,
		bus:        bus,
		dispatcher: NewDispatcher(log, opts.Shards, opts.BufferSize, opts.DispatchTimeout),
		manager:    manager,
		reconciler: reconciler,
	}
}

// Manager is the command-facing entry point of the engine.
func (o *Orchestrator) Manager() *moderation.Manager {
	return o.manager
}

// Dispatcher receives platform presence notifications.
func (o *Orchestrator) Dispatcher() contract.PresenceDispatcher {
	return o.dispatcher
}

// Publisher lets collaborators outside the engine emit audit events.
func (o *Orchestrator) Publisher() contract.EventPublisher {
	return o.bus
}

func (o *Orchestrator) AddSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

func (o *Orchestrator) AddEvictors(evictors ...contract.Evictor) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.evictors = append(o.evictors, evictors...)
}

// Start registers every worker and blocks while the supervisor runs them.
func (o *Orchestrator) Start(ctx context.Context) error {
	presenceWorkers := o.dispatcher.Workers(o.reconciler)

	o.mu.Lock()
	fanout := workers.NewEventFanout(o.log, o.bus.Events(), o.opts.SinkTimeout, o.sinks...)
	janitor := workers.NewJanitor(o.log, o.clock, o.opts.JanitorInterval, o.evictors...)
	o.supervisor.Add(fanout, janitor)
	if o.opts.ReportInterval > 0 {
		o.supervisor.Add(workers.NewReporterWorker(o.log, o.clock, o.opts.ReportInterval, o.manager))
	}
	o.supervisor.Add(presenceWorkers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "presence_shards", len(presenceWorkers))
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the workers and discards every armed restriction timer.
func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
	o.manager.Shutdown()
}
