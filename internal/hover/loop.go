package hover

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownEvent is returned for pointer events with an unrecognized kind.
var ErrUnknownEvent = errors.New("unknown pointer event")

// ErrStopped is returned when an event arrives after the loop has stopped.
var ErrStopped = errors.New("hover loop stopped")

// Event kinds of the pointer event contract.
const (
	EnterMark    = "enter-mark"
	LeaveMark    = "leave-mark"
	EnterTooltip = "enter-tooltip"
	LeaveTooltip = "leave-tooltip"
)

// Event is a pointer event. ID is set for mark events only.
type Event struct {
	Kind string  `json:"kind"`
	ID   string  `json:"id,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Validate checks the event kind and that mark events carry an id.
func (e Event) Validate() error {
	switch e.Kind {
	case EnterMark, LeaveMark:
		if e.ID == "" {
			return fmt.Errorf("%s event without article id", e.Kind)
		}
		return nil
	case EnterTooltip, LeaveTooltip:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
	}
}

// Apply feeds a validated event into the machine.
func (m *Machine) Apply(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	switch e.Kind {
	case EnterMark:
		m.EnterMark(e.ID, Point{X: e.X, Y: e.Y})
	case LeaveMark:
		m.LeaveMark(e.ID)
	case EnterTooltip:
		m.EnterTooltip()
	case LeaveTooltip:
		m.LeaveTooltip()
	}
	return nil
}

// Loop runs a Machine on a single goroutine. Pointer events and timer
// callbacks are queued and applied in order, so the machine has exactly one
// writer; any number of readers can take snapshots.
type Loop struct {
	machine *Machine
	queue   chan func()
	done    chan struct{}
	once    sync.Once

	mu   sync.RWMutex
	snap Snapshot
}

// NewLoop creates a loop around a new machine. Call Run to start it.
func NewLoop(opts Options) *Loop {
	l := &Loop{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	userChange := opts.OnChange
	opts.OnChange = func(s Snapshot) {
		l.mu.Lock()
		l.snap = s
		l.mu.Unlock()
		if userChange != nil {
			userChange(s)
		}
	}
	l.machine = NewMachine(opts)
	l.machine.post = func(f func()) { _ = l.submit(f) }
	return l
}

// Run processes events until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() {
		l.machine.Stop()
		close(l.done)
	})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-l.queue:
			f()
		}
	}
}

// Dispatch queues a pointer event.
func (l *Loop) Dispatch(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !l.submit(func() { _ = l.machine.Apply(e) }) {
		return ErrStopped
	}
	return nil
}

// Snapshot returns the state after the last applied transition.
func (l *Loop) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

func (l *Loop) submit(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- f:
		return true
	case <-l.done:
		return false
	}
}
