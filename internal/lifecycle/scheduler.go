package lifecycle

import (
	"sort"
	"sync"
	"time"
)

// Clock supplies the current time to the scheduler
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and replays
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Task is a one-shot callback owned by a Scheduler
type Task struct {
	due       time.Time
	seq       uint64
	fn        func()
	done      bool
	cancelled bool
}

// Due returns when the task is set to fire
func (t *Task) Due() time.Time {
	return t.due
}

// Cancel stops a pending task. It returns false if the task already ran or
// was cancelled before.
func (t *Task) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Scheduler holds delayed one-shot callbacks and runs them when polled.
//
// Callbacks never run on their own goroutine: the owner calls RunDue from its
// tick loop, so every callback executes on the same thread as the rest of
// the simulation.
type Scheduler struct {
	clock Clock
	tasks []*Task
	seq   uint64
}

// NewScheduler creates a scheduler reading time from clock. A nil clock
// falls back to the wall clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{
		due: s.clock.Now().Add(d),
		seq: s.seq,
		fn:  fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of tasks waiting to fire
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// RunDue runs every task whose deadline has passed, oldest deadline first,
// and returns how many ran. Tasks scheduled by a callback that are already
// due run in the same call.
func (s *Scheduler) RunDue() int {
	ran := 0
	for {
		due := s.takeDue()
		if len(due) == 0 {
			return ran
		}
		for _, t := range due {
			if t.cancelled {
				continue
			}
			t.done = true
			t.fn()
			ran++
		}
	}
}

// takeDue removes due and cancelled tasks from the queue and returns the
// due ones ordered by deadline, then by scheduling order.
func (s *Scheduler) takeDue() []*Task {
	now := s.clock.Now()
	var due []*Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case !t.due.After(now):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	return due
}
