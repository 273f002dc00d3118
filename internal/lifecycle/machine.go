package lifecycle

import (
	"time"

	"go.uber.org/zap"
)

// RestartDelay is how long a finished point waits before the next serve
const RestartDelay = 2000 * time.Millisecond

// Subscriber receives lifecycle events it registered for
type Subscriber interface {
	OnLifecycleEvent(e Event)
}

// SubscriberFunc adapts a plain function to Subscriber
type SubscriberFunc func(e Event)

func (f SubscriberFunc) OnLifecycleEvent(e Event) {
	f(e)
}

// Machine is the single source of truth for whether a match is in play.
// One instance is created per match and handed to every entity.
type Machine struct {
	state        State
	subs         map[Event][]Subscriber
	sched        *Scheduler
	restartDelay time.Duration
	log          *zap.Logger
}

// Option configures a Machine
type Option func(*Machine)

// WithLogger sets the logger used for transitions
func WithLogger(log *zap.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// WithRestartDelay overrides RestartDelay
func WithRestartDelay(d time.Duration) Option {
	return func(m *Machine) {
		m.restartDelay = d
	}
}

// NewMachine creates a machine in the GameOver state that schedules its
// auto-restart on sched.
func NewMachine(sched *Scheduler, opts ...Option) *Machine {
	if sched == nil {
		sched = NewScheduler(nil)
	}
	m := &Machine{
		state:        GameOver,
		subs:         make(map[Event][]Subscriber),
		sched:        sched,
		restartDelay: RestartDelay,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current phase
func (m *Machine) State() State {
	return m.state
}

// Scheduler returns the scheduler restart timers are placed on
func (m *Machine) Scheduler() *Scheduler {
	return m.sched
}

// Subscribe registers s for a single event. Subscribers are notified in
// registration order.
func (m *Machine) Subscribe(e Event, s Subscriber) {
	m.subs[e] = append(m.subs[e], s)
}

// SubscribeAll registers s for every lifecycle event
func (m *Machine) SubscribeAll(s Subscriber) {
	for _, e := range Events() {
		m.Subscribe(e, s)
	}
}

// SubscriberCount returns how many subscribers are registered for e
func (m *Machine) SubscriberCount(e Event) int {
	return len(m.subs[e])
}

// Post applies the transition for e and then notifies every subscriber of e.
// Subscribers may post further events; those are handled immediately, before
// the remaining subscribers of e are notified.
func (m *Machine) Post(e Event) {
	prev := m.state
	m.state = Next(prev, e)

	if prev == Playing && m.state == GameOver {
		m.sched.After(m.restartDelay, func() {
			m.Post(StartNewGame)
		})
	}

	m.log.Debug("lifecycle event",
		zap.Stringer("event", e),
		zap.Stringer("from", prev),
		zap.Stringer("to", m.state),
	)

	// Subscribers added during fan-out only see later posts
	subs := m.subs[e]
	for _, s := range subs {
		s.OnLifecycleEvent(e)
	}
}
