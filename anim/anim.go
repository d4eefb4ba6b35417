// Package anim provides a small interruptible tween driver.
//
// A Group animates one or more scalar values together over a shared
// duration and easing curve. A Driver holds at most one Group at a time;
// playing a new group replaces the old one, and Stop cancels immediately,
// freezing every value at whatever was last applied.
package anim

import "time"

// Tween describes one scalar transition. Writes go through Apply so the
// owner decides where the value lands; the driver never touches state
// directly.
type Tween struct {
	From  float64
	To    float64
	Apply func(v float64)
}

// Group is one composite animation: N tweens sharing a duration and an
// easing curve. All tweens start, progress, and stop together.
type Group struct {
	duration time.Duration
	ease     Func
	tweens   []Tween
	start    time.Time
	started  bool
}

// NewGroup builds a composite animation. A nil ease selects EaseInOutCubic.
// The clock starts lazily on the first Step, so a Group can be constructed
// inside an event handler without reading time there.
func NewGroup(duration time.Duration, ease Func, tweens ...Tween) *Group {
	if ease == nil {
		ease = EaseInOutCubic
	}
	return &Group{duration: duration, ease: ease, tweens: tweens}
}

// Step advances the group to now and applies the eased values.
// It returns false once the group has finished; on the finishing step
// every tween applies exactly its To value.
func (g *Group) Step(now time.Time) bool {
	if !g.started {
		g.started = true
		g.start = now
	}

	if g.duration <= 0 {
		g.applyAll(1)
		return false
	}

	t := float64(now.Sub(g.start)) / float64(g.duration)
	if t >= 1 {
		g.applyAll(1)
		return false
	}
	if t < 0 {
		t = 0
	}
	g.applyAll(g.ease(t))
	return true
}

func (g *Group) applyAll(progress float64) {
	for _, tw := range g.tweens {
		if progress >= 1 {
			tw.Apply(tw.To)
			continue
		}
		tw.Apply(tw.From + (tw.To-tw.From)*progress)
	}
}

// Driver runs at most one Group.
type Driver struct {
	group *Group
}

// Play replaces any running group with g. The old group is discarded
// without applying further values (stop-if-running).
func (d *Driver) Play(g *Group) {
	d.group = g
}

// Stop cancels the running group, if any. Values freeze at whatever the
// last Step applied; nothing snaps to To.
func (d *Driver) Stop() {
	d.group = nil
}

// Active reports whether a group is in flight.
func (d *Driver) Active() bool {
	return d.group != nil
}

// Step advances the running group, releasing it once it finishes.
func (d *Driver) Step(now time.Time) {
	if d.group == nil {
		return
	}
	if !d.group.Step(now) {
		d.group = nil
	}
}
