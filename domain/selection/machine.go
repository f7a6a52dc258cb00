package selection

import (
	"log/slog"

	"github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/domain/geometry"
)

// State enumerates the finite states of a selection attempt.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Listener is called on each state transition.
type Listener func(prev, next State)

// Machine turns a stream of pointer events into a finalized capture.Region or
// a cancellation. One Machine serves exactly one capture attempt; Completed
// and Cancelled are terminal and a fresh Machine is created for the next
// attempt. The machine is driven by a single goroutine (the input loop) and
// holds no locks.
//
// Events that are invalid in the current state are no-ops, so stray input
// before the overlay is ready cannot corrupt state.
type Machine struct {
	state     State
	anchor    geometry.Point
	display   capture.DisplayInfo
	live      geometry.Rect
	region    capture.Region
	logger    *slog.Logger
	listeners []Listener
}

// NewMachine returns a Machine in StateIdle.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{state: StateIdle, logger: logger}
}

// AddListener registers a transition listener.
func (m *Machine) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Current returns the current state.
func (m *Machine) Current() State { return m.state }

// PointerDown starts a selection, recording the anchor point and the active
// display. Ignored outside StateIdle.
func (m *Machine) PointerDown(p geometry.Point, display capture.DisplayInfo) {
	if m.state != StateIdle {
		return
	}
	m.anchor = p
	m.display = display
	m.live = geometry.Normalize(p, p)
	m.transition(StateSelecting)
}

// PointerMove updates the live, uncommitted rectangle used for visual
// feedback. Ignored outside StateSelecting.
func (m *Machine) PointerMove(p geometry.Point) {
	if m.state != StateSelecting {
		return
	}
	m.live = geometry.Normalize(m.anchor, p)
}

// PointerUp finalizes the selection. A degenerate (zero-area) drag, such as a
// click without movement, returns the machine to StateIdle rather than
// failing; a fresh drag can start on the same machine.
func (m *Machine) PointerUp(p geometry.Point) {
	if m.state != StateSelecting {
		return
	}
	bounds := geometry.Normalize(m.anchor, p)
	region, err := capture.NewRegion(bounds, m.display)
	if err != nil {
		// Zero-drag click: a no-op selection, not an error.
		if m.logger != nil {
			m.logger.Debug("selection discarded", "reason", err, "bounds", bounds)
		}
		m.live = geometry.Rect{}
		m.transition(StateIdle)
		return
	}
	m.region = region
	m.transition(StateCompleted)
}

// Cancel aborts an in-progress selection. Ignored outside StateSelecting.
func (m *Machine) Cancel() {
	if m.state != StateSelecting {
		return
	}
	m.transition(StateCancelled)
}

// Live returns the uncommitted rectangle while selecting.
func (m *Machine) Live() (geometry.Rect, bool) {
	return m.live, m.state == StateSelecting
}

// Region returns the finalized region after a completed selection.
func (m *Machine) Region() (capture.Region, bool) {
	return m.region, m.state == StateCompleted
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}
