package anim

import (
	"math"
	"testing"
	"time"
)

func TestGroupAppliesExactEndpoints(t *testing.T) {
	var got float64
	g := NewGroup(100*time.Millisecond, Linear, Tween{From: 0, To: 10, Apply: func(v float64) { got = v }})

	start := time.Unix(0, 0)
	if !g.Step(start) {
		t.Fatalf("group finished on first step")
	}
	if got != 0 {
		t.Errorf("value at t=0: got %v, want 0", got)
	}

	if g.Step(start.Add(200 * time.Millisecond)) {
		t.Fatalf("group still running past its duration")
	}
	if got != 10 {
		t.Errorf("value at end: got %v, want exactly 10", got)
	}
}

func TestGroupLinearMidpoint(t *testing.T) {
	var got float64
	g := NewGroup(100*time.Millisecond, Linear, Tween{From: 0, To: 10, Apply: func(v float64) { got = v }})

	start := time.Unix(0, 0)
	g.Step(start)
	g.Step(start.Add(50 * time.Millisecond))
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("value at t=0.5: got %v, want 5", got)
	}
}

func TestGroupTweensStepTogether(t *testing.T) {
	var a, b float64
	g := NewGroup(100*time.Millisecond, Linear,
		Tween{From: 0, To: 10, Apply: func(v float64) { a = v }},
		Tween{From: 100, To: 0, Apply: func(v float64) { b = v }},
	)

	start := time.Unix(0, 0)
	g.Step(start)
	g.Step(start.Add(50 * time.Millisecond))
	if math.Abs(a-5) > 1e-9 || math.Abs(b-50) > 1e-9 {
		t.Errorf("midpoint values: got a=%v b=%v, want a=5 b=50", a, b)
	}
}

func TestGroupZeroDurationSnapsToTarget(t *testing.T) {
	var got float64
	g := NewGroup(0, nil, Tween{From: 3, To: 7, Apply: func(v float64) { got = v }})
	if g.Step(time.Unix(0, 0)) {
		t.Fatalf("zero-duration group reported as still running")
	}
	if got != 7 {
		t.Errorf("got %v, want 7", got)
	}
}

func TestDriverStopFreezesValue(t *testing.T) {
	var got float64
	var d Driver
	d.Play(NewGroup(100*time.Millisecond, Linear, Tween{From: 0, To: 10, Apply: func(v float64) { got = v }}))

	start := time.Unix(0, 0)
	d.Step(start)
	d.Step(start.Add(30 * time.Millisecond))
	frozen := got

	d.Stop()
	if d.Active() {
		t.Fatalf("driver active after Stop")
	}
	d.Step(start.Add(90 * time.Millisecond))
	if got != frozen {
		t.Errorf("value moved after Stop: got %v, want %v", got, frozen)
	}
}

func TestDriverPlayReplacesRunningGroup(t *testing.T) {
	var a, b float64
	var d Driver
	start := time.Unix(0, 0)

	d.Play(NewGroup(100*time.Millisecond, Linear, Tween{From: 0, To: 10, Apply: func(v float64) { a = v }}))
	d.Step(start)

	d.Play(NewGroup(100*time.Millisecond, Linear, Tween{From: 0, To: 1, Apply: func(v float64) { b = v }}))
	d.Step(start.Add(50 * time.Millisecond))
	d.Step(start.Add(200 * time.Millisecond))

	if a != 0 {
		t.Errorf("replaced group kept writing: a=%v", a)
	}
	if b != 1 {
		t.Errorf("new group did not finish: b=%v", b)
	}
	if d.Active() {
		t.Errorf("driver still active after group finished")
	}
}

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{"Linear", Linear},
		{"EaseOutCubic", EaseOutCubic},
		{"EaseInOutCubic", EaseInOutCubic},
	}
	for _, tc := range tests {
		if v := tc.fn(0); math.Abs(v) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", tc.name, v)
		}
		if v := tc.fn(1); math.Abs(v-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", tc.name, v)
		}
	}
}

func TestEaseOutCubicDecelerates(t *testing.T) {
	// Ease-out covers more than half the distance in the first half of the time.
	if v := EaseOutCubic(0.5); v <= 0.5 {
		t.Errorf("EaseOutCubic(0.5) = %v, want > 0.5", v)
	}
}
