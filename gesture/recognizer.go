// Package gesture turns raw per-frame pointer snapshots into the structured
// pinch, pan, and double-tap events the viewport engine consumes.
//
// The recognizer is fed once per frame with every currently pressed pointer
// (mouse and touches alike). It tracks a single pointer as a pan or tap,
// and exactly two pointers as a pinch; three or more are forwarded with
// their real count so the engine can ignore them.
package gesture

import (
	"math"
	"time"
)

const (
	// DeadZone is how far a pointer must travel, in pixels, before a press
	// becomes a pan instead of a tap.
	DeadZone = 4.0

	// DoubleTapWindow is the maximum delay between two taps.
	DoubleTapWindow = 500 * time.Millisecond

	// DoubleTapDistanceSq is the maximum squared distance, in pixels,
	// between two taps.
	DoubleTapDistanceSq = 25.0

	// velocitySmoothing blends each instantaneous pan velocity sample into
	// the running estimate; higher keeps more history.
	velocitySmoothing = 0.8
)

// Pointer is one pressed contact point in a frame snapshot. The mouse uses
// ID -1; touches get stable slot IDs from the input layer.
type Pointer struct {
	ID   int
	X, Y float64
}

// Target receives recognized gestures. *viewport.Viewport satisfies it, as
// does any wrapper that forwards to one.
type Target interface {
	PinchBegin(pointers int)
	PinchUpdate(pointers int, factor float64)
	PinchEnd(pointers int, factor float64)
	PanBegin()
	PanUpdate(dx, dy float64)
	PanEnd(dx, dy, vx, vy float64)
	DoubleTap(x, y float64, ok bool)
}

// Recognizer is a per-instance gesture state machine. Not safe for
// concurrent use; feed it from the frame loop only.
type Recognizer struct {
	target Target

	// Tap positions are reported relative to this origin, normally the
	// container center.
	originX float64
	originY float64

	// Single-pointer tracking.
	tracking bool
	trackID  int
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	lastTime time.Time
	panning  bool
	velX     float64
	velY     float64

	// Tap history for double-tap detection.
	haveTap bool
	tapTime time.Time
	tapX    float64
	tapY    float64

	// Pinch session.
	pinching   bool
	startDist  float64
	lastFactor float64
}

// New creates a recognizer emitting into target.
func New(target Target) *Recognizer {
	return &Recognizer{target: target, lastFactor: 1}
}

// SetOrigin sets the point tap positions are measured from, in the same
// coordinate space as the pointers.
func (r *Recognizer) SetOrigin(cx, cy float64) {
	r.originX = cx
	r.originY = cy
}

// Velocity returns the smoothed pan velocity in px/s. Meaningful while a
// pan is in progress; it is what PanEnd will report on release.
func (r *Recognizer) Velocity() (vx, vy float64) {
	return r.velX, r.velY
}

// Panning reports whether a pan session is in progress.
func (r *Recognizer) Panning() bool {
	return r.panning
}

// Update processes one frame's snapshot of pressed pointers.
func (r *Recognizer) Update(now time.Time, pts []Pointer) {
	switch len(pts) {
	case 0:
		r.endPinch()
		r.release(now)
	case 1:
		if r.pinching {
			// The pair broke; restart tracking from the survivor so its
			// stale pre-pinch position can't produce a jump.
			r.endPinch()
			r.tracking = false
		}
		r.trackSingle(now, pts[0])
	case 2:
		r.suppressPan()
		r.trackPinch(pts[0], pts[1])
	default:
		r.suppressPan()
		// Forwarded with the real count; the engine ignores non-two-pointer
		// pinch events, so this only keeps the stream honest.
		r.target.PinchUpdate(len(pts), r.lastFactor)
	}
}

// trackSingle advances press/pan/tap tracking for one pointer.
func (r *Recognizer) trackSingle(now time.Time, p Pointer) {
	if !r.tracking || p.ID != r.trackID {
		// Pointer identity changed under us; close any open pan before
		// tracking the new pointer so the engine's session doesn't leak.
		if r.panning {
			r.panning = false
			r.target.PanEnd(r.lastX-r.startX, r.lastY-r.startY, 0, 0)
		}
		r.tracking = true
		r.trackID = p.ID
		r.startX, r.startY = p.X, p.Y
		r.lastX, r.lastY = p.X, p.Y
		r.lastTime = now
		r.velX, r.velY = 0, 0
		return
	}

	dx := p.X - r.startX
	dy := p.Y - r.startY

	if !r.panning {
		if dx*dx+dy*dy <= DeadZone*DeadZone {
			r.lastX, r.lastY = p.X, p.Y
			r.lastTime = now
			return
		}
		r.panning = true
		r.target.PanBegin()
	}

	if dt := now.Sub(r.lastTime).Seconds(); dt > 0 {
		instX := (p.X - r.lastX) / dt
		instY := (p.Y - r.lastY) / dt
		r.velX = r.velX*velocitySmoothing + instX*(1-velocitySmoothing)
		r.velY = r.velY*velocitySmoothing + instY*(1-velocitySmoothing)
	}
	r.lastX, r.lastY = p.X, p.Y
	r.lastTime = now
	r.target.PanUpdate(dx, dy)
}

// release handles all pointers lifting: end a pan with its smoothed
// velocity, or register a tap and detect double taps.
func (r *Recognizer) release(now time.Time) {
	if !r.tracking {
		return
	}
	r.tracking = false

	if r.panning {
		r.panning = false
		r.target.PanEnd(r.lastX-r.startX, r.lastY-r.startY, r.velX, r.velY)
		return
	}

	// A press and release inside the dead zone is a tap.
	if r.haveTap && now.Sub(r.tapTime) <= DoubleTapWindow {
		dx := r.lastX - r.tapX
		dy := r.lastY - r.tapY
		if dx*dx+dy*dy <= DoubleTapDistanceSq {
			r.haveTap = false
			r.target.DoubleTap(r.lastX-r.originX, r.lastY-r.originY, true)
			return
		}
	}
	r.haveTap = true
	r.tapTime = now
	r.tapX, r.tapY = r.lastX, r.lastY
}

// suppressPan ends any pan session when a second pointer lands. The pan
// ends where it is, with no fling.
func (r *Recognizer) suppressPan() {
	if r.panning {
		r.panning = false
		r.target.PanEnd(r.lastX-r.startX, r.lastY-r.startY, 0, 0)
	}
	r.tracking = false
	r.haveTap = false
}

// trackPinch runs the two-pointer session: the factor is the current
// distance over the distance at pinch start.
func (r *Recognizer) trackPinch(a, b Pointer) {
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if !r.pinching {
		r.pinching = true
		r.startDist = dist
		r.lastFactor = 1
		r.target.PinchBegin(2)
		return
	}
	if r.startDist > 0 {
		r.lastFactor = dist / r.startDist
	}
	r.target.PinchUpdate(2, r.lastFactor)
}

// endPinch closes an open pinch session with the last observed factor.
func (r *Recognizer) endPinch() {
	if !r.pinching {
		return
	}
	r.pinching = false
	r.target.PinchEnd(2, r.lastFactor)
	r.lastFactor = 1
}
