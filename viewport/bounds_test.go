package viewport

import "testing"

func TestPanBounds(t *testing.T) {
	tests := []struct {
		container Size
		content   Size
		scale     float64
		maxX      float64
		maxY      float64
	}{
		{Size{300, 300}, Size{300, 300}, 1, 0, 0},
		{Size{300, 300}, Size{300, 300}, 3, 300, 300},
		{Size{300, 300}, Size{300, 300}, 2, 150, 150},
		{Size{400, 300}, Size{200, 600}, 1, 0, 150},
		{Size{400, 300}, Size{200, 600}, 3, 100, 750},
		// Content smaller than the container stays centered.
		{Size{300, 300}, Size{100, 100}, 1, 0, 0},
		{Size{300, 300}, Size{100, 100}, 2, 0, 0},
		// Degenerate sizes collapse the range instead of erroring.
		{Size{0, 0}, Size{0, 0}, 1, 0, 0},
		{Size{300, 300}, Size{0, 0}, 5, 0, 0},
		{Size{0, 0}, Size{300, 300}, 2, 300, 300},
	}
	for i, tc := range tests {
		b := PanBounds(tc.container, tc.content, tc.scale)
		if b.MaxX != tc.maxX || b.MinX != -tc.maxX || b.MaxY != tc.maxY || b.MinY != -tc.maxY {
			t.Errorf("test #%d: bounds(%v, %v, %v) = %+v, want +-%v x +-%v",
				i, tc.container, tc.content, tc.scale, b, tc.maxX, tc.maxY)
		}
	}
}

func TestBoundsZeroAlwaysInside(t *testing.T) {
	b := PanBounds(Size{500, 100}, Size{100, 500}, 0.5)
	if b.ClampX(0) != 0 || b.ClampY(0) != 0 {
		t.Errorf("origin clamped out of bounds: %+v", b)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinX: -300, MaxX: 300, MinY: -150, MaxY: 150}
	tests := []struct {
		in, wantX float64
	}{
		{500, 300},
		{-500, -300},
		{42, 42},
	}
	for i, tc := range tests {
		if got := b.ClampX(tc.in); got != tc.wantX {
			t.Errorf("test #%d: ClampX(%v) = %v, want %v", i, tc.in, got, tc.wantX)
		}
	}
	if got := b.ClampY(200); got != 150 {
		t.Errorf("ClampY(200) = %v, want 150", got)
	}
}
