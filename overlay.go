package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawVelocityArrow shows the smoothed release velocity while a pan is in
// progress: the arrow the inertia projection will follow on release. Drawn
// from the cursor along the velocity vector.
func (g *Game) drawVelocityArrow(screen *ebiten.Image) {
	if g.input == nil || !g.vp.Panning() || g.replayer != nil {
		return
	}
	vx, vy := g.input.Velocity()
	if vx*vx+vy*vy < 1 {
		return
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	ex := sx + vx*VelocityArrowScale
	ey := sy + vy*VelocityArrowScale

	vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, ColorVelocityArrow, true)

	// Arrow head: two short strokes swept back from the tip.
	angle := math.Atan2(ey-sy, ex-sx)
	for _, da := range []float64{math.Pi * 3 / 4, -math.Pi * 3 / 4} {
		hx := ex + ArrowHeadSize*math.Cos(angle+da)
		hy := ey + ArrowHeadSize*math.Sin(angle+da)
		vector.StrokeLine(screen, float32(ex), float32(ey), float32(hx), float32(hy), 2, ColorVelocityArrow, true)
	}
}
