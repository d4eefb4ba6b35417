package viewport

import "math"

// Size is a width/height pair in container pixels.
type Size struct {
	W, H float64
}

// Bounds is the allowed translation range for the content at some scale.
// Zero is always inside the range: content stays centered when it is
// smaller than the container.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// PanBounds computes the translation range that keeps scaled content from
// being dragged entirely out of the container. Degenerate (zero) sizes
// collapse the range to [0,0], which pins the translation to the origin.
func PanBounds(container, content Size, scale float64) Bounds {
	maxX := math.Max(0, (content.W*scale-container.W)/2)
	maxY := math.Max(0, (content.H*scale-container.H)/2)
	return Bounds{MinX: -maxX, MaxX: maxX, MinY: -maxY, MaxY: maxY}
}

// ClampX clamps x into the horizontal range.
func (b Bounds) ClampX(x float64) float64 {
	return clamp(x, b.MinX, b.MaxX)
}

// ClampY clamps y into the vertical range.
func (b Bounds) ClampY(y float64) float64 {
	return clamp(y, b.MinY, b.MaxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
