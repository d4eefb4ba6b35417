// Package viewport implements a gesture-driven pinch/pan/double-tap
// transform engine for a single piece of content inside a fixed container.
//
// The engine keeps two parallel transforms. The committed transform is the
// authoritative baseline: it is always inside the zoom bounds and the pan
// bounds implied by the latest reported sizes. The live transform is what
// the renderer applies each frame: it equals the committed transform when
// nothing is happening and diverges while a gesture or a release animation
// is in flight.
//
// All methods must be called from one goroutine. The engine holds no locks;
// gesture callbacks, size reports, and Tick are expected to arrive
// serialized, the way an ebiten Update loop delivers them.
package viewport

import (
	"time"

	"zoom-anything/anim"
)

// Epsilon is the tolerance for treating a scale as exactly at a zoom bound.
const Epsilon = 1e-3

const (
	// ProjectionWindow is how far ahead, in seconds, a pan release is
	// projected along its velocity before clamping.
	ProjectionWindow = 0.3

	// InertiaDuration is the pan settle animation length (the projection
	// window, in wall time).
	InertiaDuration = 300 * time.Millisecond

	// SnapDuration is the double-tap zoom animation length.
	SnapDuration = 200 * time.Millisecond
)

// Viewport is one engine instance. Create it with New; the zero value is
// not usable because the zoom bounds would both be zero.
type Viewport struct {
	minZoom float64
	maxZoom float64

	container Size
	content   Size

	committedScale float64
	committedX     float64
	committedY     float64

	liveScale float64
	liveX     float64
	liveY     float64

	driver anim.Driver

	// Gesture sessions. Pinch holds no baseline beyond the committed
	// transform itself; pan snapshots the committed translation at begin.
	pinchActive bool
	panActive   bool
	panBaseX    float64
	panBaseY    float64
}

// New creates a viewport with the given zoom bounds. maxZoom > minZoom > 0
// is a precondition, not validated here; violating it leaves the zoom cycle
// degenerate. The initial transform is scale = minZoom, translation (0,0),
// committed and live alike.
func New(minZoom, maxZoom float64) *Viewport {
	return &Viewport{
		minZoom:        minZoom,
		maxZoom:        maxZoom,
		committedScale: minZoom,
		liveScale:      minZoom,
	}
}

// MinZoom returns the lower scale bound.
func (v *Viewport) MinZoom() float64 { return v.minZoom }

// MaxZoom returns the upper scale bound.
func (v *Viewport) MaxZoom() float64 { return v.maxZoom }

// Scale returns the live scale the renderer should apply.
func (v *Viewport) Scale() float64 { return v.liveScale }

// Translation returns the live translation the renderer should apply.
func (v *Viewport) Translation() (x, y float64) { return v.liveX, v.liveY }

// CommittedScale returns the authoritative baseline scale.
func (v *Viewport) CommittedScale() float64 { return v.committedScale }

// CommittedTranslation returns the authoritative baseline translation.
func (v *Viewport) CommittedTranslation() (x, y float64) { return v.committedX, v.committedY }

// ContainerSize returns the last reported container size.
func (v *Viewport) ContainerSize() Size { return v.container }

// ContentSize returns the last reported content size.
func (v *Viewport) ContentSize() Size { return v.content }

// PanBounds returns the translation range at the committed scale.
func (v *Viewport) PanBounds() Bounds {
	return PanBounds(v.container, v.content, v.committedScale)
}

// Animating reports whether a release animation is in flight.
func (v *Viewport) Animating() bool { return v.driver.Active() }

// Panning reports whether a pan session is open.
func (v *Viewport) Panning() bool { return v.panActive }

// Pinching reports whether a pinch session is open.
func (v *Viewport) Pinching() bool { return v.pinchActive }

// SetContainerSize records a container size report. Reports may arrive in
// any order relative to content reports and may repeat; bounds are
// re-derived fresh from the latest sizes on every report.
func (v *Viewport) SetContainerSize(w, h float64) {
	changed := v.container != (Size{W: w, H: h})
	v.container = Size{W: w, H: h}
	v.reclamp(changed)
}

// SetContentSize records a content size report.
func (v *Viewport) SetContentSize(w, h float64) {
	changed := v.content != (Size{W: w, H: h})
	v.content = Size{W: w, H: h}
	v.reclamp(changed)
}

// reclamp pulls the committed translation back into the bounds implied by
// the current sizes and committed scale. When the size actually changed the
// new baseline also propagates to the live transform: size reports happen
// outside gestures, so a running release animation is stopped rather than
// left driving toward a stale target. A repeated identical report leaves
// live values and animations alone, which lets the compositor report the
// container size every frame.
func (v *Viewport) reclamp(changed bool) {
	b := PanBounds(v.container, v.content, v.committedScale)
	v.committedX = b.ClampX(v.committedX)
	v.committedY = b.ClampY(v.committedY)
	if !changed {
		return
	}
	v.driver.Stop()
	v.liveScale = v.committedScale
	v.liveX = v.committedX
	v.liveY = v.committedY
}

// Tick advances the release animation, if one is in flight. Call once per
// frame from the same goroutine as the gesture entry points.
func (v *Viewport) Tick(now time.Time) {
	v.driver.Step(now)
}
