package main

import (
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zoom-anything/gesture"
	"zoom-anything/viewport"
)

// Game is the compositor adapter: it glues the viewport engine into
// ebiten's Update/Draw/Layout loop. Layout feeds container size reports to
// the engine, Update pumps input and the animation clock, and Draw reads
// only the live transform outputs.
type Game struct {
	logger *log.Logger

	vp     *viewport.Viewport
	target gesture.Target // vp, or a Recorder wrapping it

	input    *InputSystem
	ui       *UISystem
	replayer *Replayer

	content  *ebiten.Image
	contentW float64
	contentH float64

	screenWidth  int
	screenHeight int

	screenshotRequested bool
}

// NewGame wires a demo instance. content may be nil: the engine then never
// receives a content size report and the transform stays pinned at the
// origin. recorder may be nil; when set it observes every gesture the input
// layer emits.
func NewGame(cfg Config, logger *log.Logger, content *ebiten.Image, recorder *Recorder) *Game {
	g := &Game{
		logger:  logger,
		vp:      viewport.New(cfg.MinZoom, cfg.MaxZoom),
		content: content,
	}

	g.target = g.vp
	if recorder != nil {
		recorder.Wrap(g.vp)
		g.target = recorder
	}

	if content != nil {
		w, h := content.Bounds().Dx(), content.Bounds().Dy()
		g.contentW, g.contentH = float64(w), float64(h)
		g.vp.SetContentSize(g.contentW, g.contentH)
	}

	g.input = NewInputSystem(g)
	g.ui = NewUISystem(g)
	return g
}

// SetReplayer switches the game into replay mode: live input is ignored and
// the recorded event stream drives the engine instead. Without a content
// image the placeholder stands in so the replayed transform is visible.
func (g *Game) SetReplayer(r *Replayer) {
	g.replayer = r
	if g.content == nil {
		g.content = makePlaceholder()
		g.contentW = float64(g.content.Bounds().Dx())
		g.contentH = float64(g.content.Bounds().Dy())
		g.vp.SetContentSize(g.contentW, g.contentH)
	}
}

func (g *Game) Update() error {
	now := time.Now()

	g.handleControlKeys()

	if g.replayer != nil {
		g.replayer.Feed(now)
	} else {
		g.input.Update(now)
	}
	g.ui.Update()

	g.vp.Tick(now)
	return nil
}

func (g *Game) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.screenshotRequested = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.drawBackdrop(screen)
	g.drawContent(screen)
	g.drawVelocityArrow(screen)
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	f, err := os.Create("screenshot.png")
	if err != nil {
		g.logger.Error("screenshot", "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.logger.Error("screenshot", "err", err)
		return
	}
	g.logger.Info("screenshot saved", "file", "screenshot.png")
}

// Layout reports the container size to the engine every call; repeated
// identical reports are absorbed by the engine's idempotent re-clamp.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.vp.SetContainerSize(float64(outsideWidth), float64(outsideHeight))
	g.input.SetOrigin(float64(outsideWidth)/2, float64(outsideHeight)/2)
	return outsideWidth, outsideHeight
}
