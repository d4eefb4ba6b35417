package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawBackdrop renders the static container backdrop: a screen-space grid
// and a cross marking the container center, the anchor the transform and
// tap offsets are measured from. The backdrop does not move with the
// content; it shows where the container is.
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	w := float32(g.screenWidth)
	h := float32(g.screenHeight)

	for x := float32(0); x < w; x += GridSize {
		vector.StrokeLine(screen, x, 0, x, h, 1, ColorGrid, false)
	}
	for y := float32(0); y < h; y += GridSize {
		vector.StrokeLine(screen, 0, y, w, y, 1, ColorGrid, false)
	}

	cx := w / 2
	cy := h / 2
	vector.StrokeLine(screen, cx-OriginCrossSize, cy, cx+OriginCrossSize, cy, 2, ColorOriginCross, false)
	vector.StrokeLine(screen, cx, cy-OriginCrossSize, cx, cy+OriginCrossSize, 2, ColorOriginCross, false)
}
