package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont attempts to load fonts/Roboto-Regular.ttf. If anything fails
// it falls back to basicfont.Face7x13 so the HUD always renders.
func LoadUIFont() font.Face {
	data, err := os.ReadFile("fonts/Roboto-Regular.ttf")
	if err != nil {
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawTextLines draws multiline text with the top of the first line at
// (x, y). text.Draw expects a baseline, so each line shifts by the face's
// ascent.
func drawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	lineHeight := ascent + descent
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}

// drawHUD prints the transform status: live values (what is rendered),
// committed values (the baseline), the pan bounds, and which gesture or
// animation currently owns the live transform.
func (g *Game) drawHUD(screen *ebiten.Image, face font.Face) {
	lx, ly := g.vp.Translation()
	cx, cy := g.vp.CommittedTranslation()
	b := g.vp.PanBounds()

	var badges []string
	if g.vp.Pinching() {
		badges = append(badges, "pinch")
	}
	if g.vp.Panning() {
		badges = append(badges, "pan")
	}
	if g.vp.Animating() {
		badges = append(badges, "anim")
	}
	if len(badges) == 0 {
		badges = append(badges, "idle")
	}

	mode := "live"
	if g.replayer != nil {
		mode = "replay"
	}

	msg := fmt.Sprintf(
		"scale: %.3f (committed %.3f, range %g..%g)\n"+
			"translate: (%.1f, %.1f) (committed %.1f, %.1f)\n"+
			"pan bounds: x +-%.0f  y +-%.0f\n"+
			"%s: %s\n"+
			"drag: pan  wheel / + -: zoom  double-click: zoom cycle  F1: screenshot",
		g.vp.Scale(), g.vp.CommittedScale(), g.vp.MinZoom(), g.vp.MaxZoom(),
		lx, ly, cx, cy,
		b.MaxX, b.MaxY,
		mode, strings.Join(badges, "+"),
	)
	drawTextLines(screen, face, msg, HUDMarginX, HUDMarginY, ColorHUDText)
}
