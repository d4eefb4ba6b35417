package viewport

// Pinch interpreter. A pinch session scales the live transform around the
// committed baseline: the incoming factor is always relative to the
// committed scale at gesture start, never compounded across updates.
// Events with a pointer count other than two are ignored outright.

// PinchBegin opens a pinch session. Any in-flight animation is cancelled so
// the live values freeze before the pinch takes over.
func (v *Viewport) PinchBegin(pointers int) {
	if pointers != 2 {
		return
	}
	v.driver.Stop()
	v.pinchActive = true
}

// PinchUpdate applies a scale factor relative to the committed scale.
// An update without a preceding begin opens the session itself; some
// recognizers report activation late.
func (v *Viewport) PinchUpdate(pointers int, factor float64) {
	if pointers != 2 {
		return
	}
	if !v.pinchActive {
		v.driver.Stop()
		v.pinchActive = true
	}
	scale, x, y := v.pinchTransform(factor)
	v.liveScale = scale
	v.liveX = x
	v.liveY = y
}

// PinchEnd commits the final factor and closes the session. The same
// computation as an update, written into the committed transform.
func (v *Viewport) PinchEnd(pointers int, factor float64) {
	if pointers != 2 {
		return
	}
	v.pinchActive = false
	scale, x, y := v.pinchTransform(factor)
	v.committedScale = scale
	v.committedX = x
	v.committedY = y
	v.liveScale = scale
	v.liveX = x
	v.liveY = y
}

// pinchTransform derives the scaled transform: clamp the factored scale
// into the zoom bounds, then pull the committed translation into the pan
// bounds at that new scale.
func (v *Viewport) pinchTransform(factor float64) (scale, x, y float64) {
	scale = clamp(v.committedScale*factor, v.minZoom, v.maxZoom)
	b := PanBounds(v.container, v.content, scale)
	return scale, b.ClampX(v.committedX), b.ClampY(v.committedY)
}
