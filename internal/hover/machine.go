// Package hover tracks which article's tooltip is open while the pointer
// moves between marks and the tooltip.
//
// The pointer may leave a mark on its way to the tooltip, so leaving does not
// close the tooltip at once: a grace timer starts and entering the tooltip
// before it fires cancels it. Only the last entered mark is active.
package hover

import (
	"io"
	"log/slog"
	"time"
)

// Default grace periods.
const (
	DefaultMarkGrace    = 100 * time.Millisecond
	DefaultTooltipGrace = 10 * time.Millisecond
)

// State is the interaction state.
type State int

const (
	Idle State = iota
	HoverMark
	HoverTooltip
	PendingDismiss
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case HoverMark:
		return "hover-mark"
	case HoverTooltip:
		return "hover-tooltip"
	case PendingDismiss:
		return "pending-dismiss"
	default:
		return "unknown"
	}
}

// Point is a viewport-relative pointer position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a read-only copy of the hover state.
type Snapshot struct {
	State    State  `json:"-"`
	ActiveID string `json:"active_id,omitempty"`
	Pinned   bool   `json:"pinned"`
	Pointer  Point  `json:"pointer"`
}

// Visible reports whether a tooltip should be shown.
func (s Snapshot) Visible() bool {
	return s.ActiveID != ""
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Machine.
type Options struct {
	MarkGrace    time.Duration
	TooltipGrace time.Duration
	Clock        Clock
	Logger       *slog.Logger
	OnChange     func(Snapshot) // called after every transition
}

// timerHandle is the single pending dismiss timer. gen identifies the
// schedule it belongs to; a callback from an older schedule is ignored.
type timerHandle struct {
	gen   uint64
	timer Timer
}

// Machine is the hover state machine. It is not safe for concurrent use:
// events and timer callbacks must reach it on one goroutine. Loop provides
// that; tests drive it directly with a manual clock.
type Machine struct {
	state    State
	activeID string
	pinned   bool
	pointer  Point

	pending *timerHandle
	gen     uint64

	markGrace    time.Duration
	tooltipGrace time.Duration
	clock        Clock
	logger       *slog.Logger
	onChange     func(Snapshot)

	// post hands timer callbacks back to the goroutine that owns the machine.
	post func(func())
}

// NewMachine creates an idle machine.
func NewMachine(opts Options) *Machine {
	m := &Machine{
		markGrace:    opts.MarkGrace,
		tooltipGrace: opts.TooltipGrace,
		clock:        opts.Clock,
		logger:       opts.Logger,
		onChange:     opts.OnChange,
		post:         func(f func()) { f() },
	}
	if m.markGrace <= 0 {
		m.markGrace = DefaultMarkGrace
	}
	if m.tooltipGrace <= 0 {
		m.tooltipGrace = DefaultTooltipGrace
	}
	if m.clock == nil {
		m.clock = systemClock{}
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{State: m.state, ActiveID: m.activeID, Pinned: m.pinned, Pointer: m.pointer}
}

// EnterMark makes id the active article from any state.
func (m *Machine) EnterMark(id string, p Point) {
	if id == "" {
		return
	}
	m.cancel()
	m.activeID = id
	m.pointer = p
	m.pinned = false
	m.transition(HoverMark)
}

// LeaveMark starts the mark grace period. Leaving a mark that is no longer
// the hovered one is ignored.
func (m *Machine) LeaveMark(id string) {
	if m.state != HoverMark || id != m.activeID {
		return
	}
	m.schedule(m.markGrace)
	m.transition(PendingDismiss)
}

// EnterTooltip pins the open tooltip and cancels a pending dismiss. Without
// an active article there is no tooltip to enter.
func (m *Machine) EnterTooltip() {
	if m.activeID == "" || m.state == HoverTooltip {
		return
	}
	m.cancel()
	m.pinned = true
	m.transition(HoverTooltip)
}

// LeaveTooltip starts the shorter tooltip grace period.
func (m *Machine) LeaveTooltip() {
	if m.state != HoverTooltip {
		return
	}
	m.pinned = false
	m.schedule(m.tooltipGrace)
	m.transition(PendingDismiss)
}

// Stop cancels any pending timer without changing state.
func (m *Machine) Stop() {
	m.cancel()
}

func (m *Machine) expire(gen uint64) {
	if m.pending == nil || m.pending.gen != gen || m.state != PendingDismiss {
		m.logger.Debug("ignoring stale dismiss timer", slog.Uint64("gen", gen))
		return
	}
	m.pending = nil
	m.activeID = ""
	m.pinned = false
	m.transition(Idle)
}

func (m *Machine) schedule(d time.Duration) {
	m.cancel()
	m.gen++
	gen := m.gen
	h := &timerHandle{gen: gen}
	h.timer = m.clock.AfterFunc(d, func() {
		m.post(func() { m.expire(gen) })
	})
	m.pending = h
}

func (m *Machine) cancel() {
	if m.pending == nil {
		return
	}
	m.pending.timer.Stop()
	m.pending = nil
}

func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	m.logger.Debug("hover transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("article", m.activeID))
	if m.onChange != nil {
		m.onChange(m.Snapshot())
	}
}
