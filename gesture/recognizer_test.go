package gesture

import (
	"math"
	"reflect"
	"testing"
	"time"
)

// event is one recorded Target call.
type event struct {
	kind string
	args []float64
}

type recorder struct {
	events []event
}

func (r *recorder) PinchBegin(pointers int) {
	r.events = append(r.events, event{"pinch_begin", []float64{float64(pointers)}})
}
func (r *recorder) PinchUpdate(pointers int, factor float64) {
	r.events = append(r.events, event{"pinch_update", []float64{float64(pointers), factor}})
}
func (r *recorder) PinchEnd(pointers int, factor float64) {
	r.events = append(r.events, event{"pinch_end", []float64{float64(pointers), factor}})
}
func (r *recorder) PanBegin() {
	r.events = append(r.events, event{"pan_begin", nil})
}
func (r *recorder) PanUpdate(dx, dy float64) {
	r.events = append(r.events, event{"pan_update", []float64{dx, dy}})
}
func (r *recorder) PanEnd(dx, dy, vx, vy float64) {
	r.events = append(r.events, event{"pan_end", []float64{dx, dy, vx, vy}})
}
func (r *recorder) DoubleTap(x, y float64, ok bool) {
	flag := 0.0
	if ok {
		flag = 1
	}
	r.events = append(r.events, event{"double_tap", []float64{x, y, flag}})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.kind
	}
	return out
}

func (r *recorder) last(kind string) (event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].kind == kind {
			return r.events[i], true
		}
	}
	return event{}, false
}

func frames(rec *Recognizer, start time.Time, step time.Duration, snapshots ...[]Pointer) time.Time {
	now := start
	for _, pts := range snapshots {
		rec.Update(now, pts)
		now = now.Add(step)
	}
	return now
}

func TestPanAfterDeadZone(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	start := time.Unix(0, 0)

	frames(rec, start, 16*time.Millisecond,
		[]Pointer{{ID: -1, X: 100, Y: 100}},
		[]Pointer{{ID: -1, X: 102, Y: 100}}, // inside dead zone
		[]Pointer{{ID: -1, X: 120, Y: 100}},
		[]Pointer{{ID: -1, X: 140, Y: 110}},
		nil,
	)

	want := []string{"pan_begin", "pan_update", "pan_update", "pan_end"}
	if !reflect.DeepEqual(tgt.kinds(), want) {
		t.Fatalf("events: %v, want %v", tgt.kinds(), want)
	}

	end, _ := tgt.last("pan_end")
	if end.args[0] != 40 || end.args[1] != 10 {
		t.Errorf("pan_end delta: (%v, %v), want (40, 10)", end.args[0], end.args[1])
	}
	if end.args[2] <= 0 {
		t.Errorf("pan_end velocityX: %v, want positive", end.args[2])
	}
}

func TestDeltasCumulativeFromPress(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: -1, X: 0, Y: 0}},
		[]Pointer{{ID: -1, X: 10, Y: 0}},
		[]Pointer{{ID: -1, X: 15, Y: 5}},
	)
	last, ok := tgt.last("pan_update")
	if !ok {
		t.Fatalf("no pan_update emitted")
	}
	if last.args[0] != 15 || last.args[1] != 5 {
		t.Errorf("cumulative delta: (%v, %v), want (15, 5)", last.args[0], last.args[1])
	}
}

func TestTapInsideDeadZoneIsNotAPan(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: -1, X: 100, Y: 100}},
		[]Pointer{{ID: -1, X: 101, Y: 101}},
		nil,
	)
	if len(tgt.events) != 0 {
		t.Errorf("tap emitted events: %v", tgt.kinds())
	}
}

func TestDoubleTapEmittedRelativeToOrigin(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	rec.SetOrigin(150, 150)

	frames(rec, time.Unix(0, 0), 50*time.Millisecond,
		[]Pointer{{ID: -1, X: 200, Y: 120}},
		nil,
		[]Pointer{{ID: -1, X: 201, Y: 121}},
		nil,
	)

	tap, ok := tgt.last("double_tap")
	if !ok {
		t.Fatalf("no double_tap emitted: %v", tgt.kinds())
	}
	if tap.args[0] != 51 || tap.args[1] != -29 || tap.args[2] != 1 {
		t.Errorf("double_tap: %v, want (51, -29, ok)", tap.args)
	}
}

func TestTwoSlowTapsDoNotDoubleTap(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 400*time.Millisecond,
		[]Pointer{{ID: -1, X: 100, Y: 100}},
		nil, // release at 400ms
		[]Pointer{{ID: -1, X: 100, Y: 100}},
		nil, // second release 800ms after the first
	)
	if _, ok := tgt.last("double_tap"); ok {
		t.Errorf("slow taps recognized as double tap")
	}
}

func TestTwoDistantTapsDoNotDoubleTap(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 50*time.Millisecond,
		[]Pointer{{ID: -1, X: 100, Y: 100}},
		nil,
		[]Pointer{{ID: -1, X: 160, Y: 100}},
		nil,
	)
	if _, ok := tgt.last("double_tap"); ok {
		t.Errorf("distant taps recognized as double tap")
	}
}

func TestPinchFactorFromStartDistance(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: 1, X: 100, Y: 150}, {ID: 2, X: 200, Y: 150}}, // dist 100
		[]Pointer{{ID: 1, X: 50, Y: 150}, {ID: 2, X: 250, Y: 150}},  // dist 200
		[]Pointer{{ID: 1, X: 75, Y: 150}, {ID: 2, X: 225, Y: 150}},  // dist 150
		nil,
	)

	want := []string{"pinch_begin", "pinch_update", "pinch_update", "pinch_end"}
	if !reflect.DeepEqual(tgt.kinds(), want) {
		t.Fatalf("events: %v, want %v", tgt.kinds(), want)
	}
	if f := tgt.events[1].args[1]; math.Abs(f-2) > 1e-9 {
		t.Errorf("first factor: %v, want 2", f)
	}
	if f := tgt.events[2].args[1]; math.Abs(f-1.5) > 1e-9 {
		t.Errorf("second factor: %v, want 1.5", f)
	}
	end, _ := tgt.last("pinch_end")
	if math.Abs(end.args[1]-1.5) > 1e-9 {
		t.Errorf("pinch_end factor: %v, want last observed 1.5", end.args[1])
	}
}

func TestSecondPointerSuppressesPan(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: 1, X: 100, Y: 100}},
		[]Pointer{{ID: 1, X: 130, Y: 100}},
		[]Pointer{{ID: 1, X: 130, Y: 100}, {ID: 2, X: 200, Y: 200}},
	)

	want := []string{"pan_begin", "pan_update", "pan_end", "pinch_begin"}
	if !reflect.DeepEqual(tgt.kinds(), want) {
		t.Fatalf("events: %v, want %v", tgt.kinds(), want)
	}
	end, _ := tgt.last("pan_end")
	if end.args[2] != 0 || end.args[3] != 0 {
		t.Errorf("suppressed pan released with velocity (%v, %v), want zero", end.args[2], end.args[3])
	}
}

func TestPinchBreakRestartsTrackingFromSurvivor(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: 1, X: 100, Y: 150}, {ID: 2, X: 200, Y: 150}},
		[]Pointer{{ID: 1, X: 50, Y: 150}, {ID: 2, X: 250, Y: 150}},
		[]Pointer{{ID: 1, X: 50, Y: 150}}, // pointer 2 lifted
		[]Pointer{{ID: 1, X: 52, Y: 150}}, // inside dead zone: no pan yet
	)

	want := []string{"pinch_begin", "pinch_update", "pinch_end"}
	if !reflect.DeepEqual(tgt.kinds(), want) {
		t.Fatalf("events: %v, want %v", tgt.kinds(), want)
	}
	end, _ := tgt.last("pinch_end")
	if end.args[0] != 2 || math.Abs(end.args[1]-2) > 1e-9 {
		t.Errorf("pinch_end: %v, want count 2 factor 2", end.args)
	}
}

func TestThreePointersForwardRealCount(t *testing.T) {
	tgt := &recorder{}
	rec := New(tgt)
	frames(rec, time.Unix(0, 0), 16*time.Millisecond,
		[]Pointer{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}, {ID: 3, X: 50, Y: 80}},
	)
	if len(tgt.events) != 1 || tgt.events[0].kind != "pinch_update" {
		t.Fatalf("events: %v, want one pinch_update", tgt.kinds())
	}
	if tgt.events[0].args[0] != 3 {
		t.Errorf("forwarded pointer count: %v, want 3", tgt.events[0].args[0])
	}
}
