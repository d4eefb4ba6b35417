package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zoom-anything/gesture"
)

// maxTouches is the number of touch pointer slots tracked at once.
const maxTouches = 9

// InputSystem polls ebiten's mouse and touch state once per frame into
// pointer snapshots for the gesture recognizer, and maps the wheel and
// +/- keys onto the pinch path.
type InputSystem struct {
	game *Game
	rec  *gesture.Recognizer

	// Presses that start over the overlay UI are excluded from gesture
	// recognition until the button is released again.
	mouseBlocked bool

	// Touch-slot allocation: each ebiten.TouchID gets a stable small slot
	// so the recognizer sees consistent pointer IDs across frames.
	touchIDs  []ebiten.TouchID
	touchMap  [maxTouches]ebiten.TouchID
	touchUsed [maxTouches]bool

	pts []gesture.Pointer
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{
		game: g,
		rec:  gesture.New(g.target),
	}
}

// SetOrigin forwards the container center to the recognizer so tap
// positions arrive center-relative, the way the engine expects them.
func (is *InputSystem) SetOrigin(cx, cy float64) {
	is.rec.SetOrigin(cx, cy)
}

// Velocity exposes the recognizer's smoothed pan velocity for the overlay.
func (is *InputSystem) Velocity() (vx, vy float64) {
	return is.rec.Velocity()
}

func (is *InputSystem) Update(now time.Time) {
	is.handleWheelZoom()
	is.rec.Update(now, is.collectPointers())
}

// handleWheelZoom maps wheel and keyboard zoom onto a one-shot pinch
// sequence, committed instantly. The engine treats it like any other
// two-pointer pinch.
func (is *InputSystem) handleWheelZoom() {
	_, dy := ebiten.Wheel()

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dy += KeyZoomStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dy -= KeyZoomStep
	}
	if dy == 0 {
		return
	}

	factor := math.Pow(1+ZoomSpeed, dy)
	target := is.game.target
	target.PinchBegin(2)
	target.PinchUpdate(2, factor)
	target.PinchEnd(2, factor)
}

// collectPointers snapshots every pressed pointer. The mouse is pointer -1;
// touches occupy slots 1..maxTouches.
func (is *InputSystem) collectPointers() []gesture.Pointer {
	is.pts = is.pts[:0]

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && is.game.ui.IsMouseOver(mx, my) {
			is.mouseBlocked = true
		}
		if !is.mouseBlocked {
			is.pts = append(is.pts, gesture.Pointer{ID: -1, X: float64(mx), Y: float64(my)})
		}
	} else {
		is.mouseBlocked = false
	}

	is.touchIDs = ebiten.AppendTouchIDs(is.touchIDs[:0])
	active := [maxTouches]bool{}
	for _, tid := range is.touchIDs {
		slot := is.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		is.pts = append(is.pts, gesture.Pointer{ID: slot + 1, X: float64(tx), Y: float64(ty)})
	}
	for i := range is.touchUsed {
		if is.touchUsed[i] && !active[i] {
			is.touchUsed[i] = false
			is.touchMap[i] = 0
		}
	}

	return is.pts
}

// touchSlot maps an ebiten.TouchID to a stable slot, allocating a free one
// for new touches. Returns -1 when every slot is taken.
func (is *InputSystem) touchSlot(tid ebiten.TouchID) int {
	for i := range is.touchMap {
		if is.touchUsed[i] && is.touchMap[i] == tid {
			return i
		}
	}
	for i := range is.touchMap {
		if !is.touchUsed[i] {
			is.touchUsed[i] = true
			is.touchMap[i] = tid
			return i
		}
	}
	return -1
}
