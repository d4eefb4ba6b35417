package viewport

import "zoom-anything/anim"

// Pan interpreter. Deltas are cumulative from the begin event; the session
// baseline is the committed translation snapshotted at begin. Panning only
// moves anything while zoomed in past minZoom (plus Epsilon); at minimum
// zoom the content is centered and a release snaps the translation home.

// PanBegin opens a pan session: snapshot the committed translation as the
// baseline and cancel any in-flight animation.
func (v *Viewport) PanBegin() {
	v.driver.Stop()
	v.panActive = true
	v.panBaseX = v.committedX
	v.panBaseY = v.committedY
}

// PanUpdate moves the live translation to baseline+delta, clamped into the
// bounds at the committed scale. Ignored without a session or while at
// minimum zoom.
func (v *Viewport) PanUpdate(dx, dy float64) {
	if !v.panActive || !v.panUnlocked() {
		return
	}
	b := PanBounds(v.container, v.content, v.committedScale)
	v.liveX = b.ClampX(v.panBaseX + dx)
	v.liveY = b.ClampY(v.panBaseY + dy)
}

// PanEnd closes the session. At minimum zoom the translation snaps to the
// origin regardless of the delta. Otherwise the release point is projected
// forward along the release velocity (px/s) over the projection window,
// clamped, committed, and the live translation eases out toward it.
func (v *Viewport) PanEnd(dx, dy, vx, vy float64) {
	if !v.panActive {
		return
	}
	v.panActive = false

	if !v.panUnlocked() {
		v.committedX, v.committedY = 0, 0
		v.liveX, v.liveY = 0, 0
		return
	}

	b := PanBounds(v.container, v.content, v.committedScale)
	relX := b.ClampX(v.panBaseX + dx)
	relY := b.ClampY(v.panBaseY + dy)
	tgtX := b.ClampX(relX + vx*ProjectionWindow)
	tgtY := b.ClampY(relY + vy*ProjectionWindow)

	v.committedX = tgtX
	v.committedY = tgtY
	v.liveX = relX
	v.liveY = relY

	if relX == tgtX && relY == tgtY {
		return
	}
	v.driver.Play(anim.NewGroup(InertiaDuration, anim.EaseOutCubic,
		anim.Tween{From: relX, To: tgtX, Apply: func(x float64) { v.liveX = x }},
		anim.Tween{From: relY, To: tgtY, Apply: func(y float64) { v.liveY = y }},
	))
}

func (v *Viewport) panUnlocked() bool {
	return v.committedScale > v.minZoom+Epsilon
}
