package selection

import (
	"log/slog"
	"testing"

	"github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func testDisplay() capture.DisplayInfo {
	d := capture.NewDisplayInfo(0, geometry.Rect{MaxX: 1920, MaxY: 1080})
	d.Primary = true
	return d
}

// recorder collects transition targets in order.
type recorder struct {
	seq []State
}

func (r *recorder) listener(prev, next State) { r.seq = append(r.seq, next) }

func TestMachine_DragYieldsNormalizedRegion(t *testing.T) {
	m := NewMachine(discardLogger)
	m.PointerDown(geometry.Pt(10, 10), testDisplay())
	m.PointerMove(geometry.Pt(50, 5))
	m.PointerUp(geometry.Pt(50, 5))

	if m.Current() != StateCompleted {
		t.Fatalf("state = %v, want completed", m.Current())
	}
	region, ok := m.Region()
	if !ok {
		t.Fatalf("expected finalized region")
	}
	want := geometry.Rect{MinX: 10, MinY: 5, MaxX: 50, MaxY: 10}
	if region.Bounds() != want {
		t.Errorf("region bounds = %v, want %v", region.Bounds(), want)
	}
}

func TestMachine_ZeroDragReturnsToIdle(t *testing.T) {
	m := NewMachine(discardLogger)
	m.PointerDown(geometry.Pt(5, 5), testDisplay())
	m.PointerUp(geometry.Pt(5, 5))

	if m.Current() != StateIdle {
		t.Fatalf("state = %v, want idle after zero-drag click", m.Current())
	}
	if _, ok := m.Region(); ok {
		t.Errorf("zero-drag click must not produce a region")
	}

	// The same machine can start a fresh drag afterwards.
	m.PointerDown(geometry.Pt(0, 0), testDisplay())
	m.PointerUp(geometry.Pt(10, 10))
	if m.Current() != StateCompleted {
		t.Errorf("state after second drag = %v, want completed", m.Current())
	}
}

func TestMachine_LiveRectDuringSelection(t *testing.T) {
	m := NewMachine(discardLogger)
	if _, ok := m.Live(); ok {
		t.Errorf("idle machine must not report a live rect")
	}
	m.PointerDown(geometry.Pt(100, 100), testDisplay())
	m.PointerMove(geometry.Pt(20, 160))
	live, ok := m.Live()
	if !ok {
		t.Fatalf("expected live rect while selecting")
	}
	want := geometry.Rect{MinX: 20, MinY: 100, MaxX: 100, MaxY: 160}
	if live != want {
		t.Errorf("live rect = %v, want %v", live, want)
	}
}

func TestMachine_CancelWhileSelecting(t *testing.T) {
	m := NewMachine(discardLogger)
	r := &recorder{}
	m.AddListener(r.listener)

	m.PointerDown(geometry.Pt(1, 1), testDisplay())
	m.Cancel()

	if m.Current() != StateCancelled {
		t.Fatalf("state = %v, want cancelled", m.Current())
	}
	if len(r.seq) != 2 || r.seq[0] != StateSelecting || r.seq[1] != StateCancelled {
		t.Errorf("transition sequence = %v", r.seq)
	}

	// Terminal: further events are ignored.
	m.PointerDown(geometry.Pt(2, 2), testDisplay())
	m.PointerUp(geometry.Pt(50, 50))
	if m.Current() != StateCancelled {
		t.Errorf("cancelled machine accepted new events: %v", m.Current())
	}
}

func TestMachine_IdleIgnoresStrayEvents(t *testing.T) {
	m := NewMachine(discardLogger)
	m.PointerMove(geometry.Pt(5, 5))
	m.PointerUp(geometry.Pt(5, 5))
	m.Cancel()
	if m.Current() != StateIdle {
		t.Errorf("stray events changed idle state: %v", m.Current())
	}
}

func TestMachine_CompletedIsTerminal(t *testing.T) {
	m := NewMachine(discardLogger)
	m.PointerDown(geometry.Pt(0, 0), testDisplay())
	m.PointerUp(geometry.Pt(30, 30))
	if m.Current() != StateCompleted {
		t.Fatalf("state = %v, want completed", m.Current())
	}
	m.Cancel()
	m.PointerDown(geometry.Pt(1, 1), testDisplay())
	if m.Current() != StateCompleted {
		t.Errorf("completed machine accepted new events: %v", m.Current())
	}
	region, _ := m.Region()
	if region.Bounds() != (geometry.Rect{MaxX: 30, MaxY: 30}) {
		t.Errorf("region changed after completion: %v", region.Bounds())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateSelecting, "selecting"},
		{StateCompleted, "completed"},
		{StateCancelled, "cancelled"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
