package viewport

import (
	"math"

	"zoom-anything/anim"
)

// Double-tap interpreter. Each recognized double tap advances the zoom
// cycle min -> mid -> max -> min while keeping the tapped point visually
// stationary.

// DoubleTap handles a recognized double tap at (x, y) relative to the
// container center; pass (0,0) when the position is unknown. ok carries the
// recognizer's success flag, and a failed recognition is ignored.
//
// The target scale and translation are committed immediately; the live
// transform animates toward them over a fixed short duration, scale and
// both translation axes as one stop-together composite.
func (v *Viewport) DoubleTap(x, y float64, ok bool) {
	if !ok {
		return
	}
	v.driver.Stop()

	target := v.nextZoomStop()

	// Keep the tapped point fixed: the point at tap offset p maps to
	// p - ratio*(p - t) when the scale changes by ratio around the
	// translation t.
	ratio := target / v.committedScale
	b := PanBounds(v.container, v.content, target)
	tgtX := b.ClampX(x - ratio*(x-v.committedX))
	tgtY := b.ClampY(y - ratio*(y-v.committedY))

	fromScale, fromX, fromY := v.liveScale, v.liveX, v.liveY
	v.committedScale = target
	v.committedX = tgtX
	v.committedY = tgtY

	v.driver.Play(anim.NewGroup(SnapDuration, nil,
		anim.Tween{From: fromScale, To: target, Apply: func(s float64) { v.liveScale = s }},
		anim.Tween{From: fromX, To: tgtX, Apply: func(x float64) { v.liveX = x }},
		anim.Tween{From: fromY, To: tgtY, Apply: func(y float64) { v.liveY = y }},
	))
}

// nextZoomStop picks the next scale in the min -> mid -> max -> min cycle,
// treating anything within Epsilon of a bound as on it.
func (v *Viewport) nextZoomStop() float64 {
	s := v.committedScale
	switch {
	case math.Abs(s-v.minZoom) < Epsilon:
		return (v.minZoom + v.maxZoom) / 2
	case s < v.maxZoom-Epsilon:
		return v.maxZoom
	default:
		return v.minZoom
	}
}
