package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// UISystem owns the overlay: the HUD text and the button that toggles it.
// Presses that land on the overlay are reported via IsMouseOver so the
// input layer keeps them out of gesture recognition.
type UISystem struct {
	game *Game
	face font.Face

	hudVisible bool
}

func NewUISystem(g *Game) *UISystem {
	return &UISystem{
		game:       g,
		face:       LoadUIFont(),
		hudVisible: true,
	}
}

// buttonRect is the HUD toggle button, top-right.
func (ui *UISystem) buttonRect() (x, y, w, h float64) {
	return float64(ui.game.screenWidth) - ButtonWidth - ButtonMargin, ButtonMargin, ButtonWidth, ButtonHeight
}

// IsMouseOver reports whether (mx, my) is over any overlay element.
func (ui *UISystem) IsMouseOver(mx, my int) bool {
	x, y, w, h := ui.buttonRect()
	fx, fy := float64(mx), float64(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

func (ui *UISystem) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if ui.IsMouseOver(mx, my) {
		ui.hudVisible = !ui.hudVisible
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	x, y, w, h := ui.buttonRect()

	btnColor := ColorButtonBackground
	if ui.hudVisible {
		btnColor = ColorButtonActive
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), btnColor, false)
	ebitenutil.DebugPrintAt(screen, "HUD", int(x)+12, int(y)+8)

	if ui.hudVisible {
		ui.game.drawHUD(screen, ui.face)
	}
}
