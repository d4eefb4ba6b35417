package main

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadContentImage decodes an image file and fits oversized images into
// MaxContentSize so pathological inputs don't blow up texture memory.
func LoadContentImage(path string) (*ebiten.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > MaxContentSize || b.Dy() > MaxContentSize {
		img = imaging.Fit(img, MaxContentSize, MaxContentSize, imaging.Lanczos)
	}
	return ebiten.NewImageFromImage(img), nil
}

// makePlaceholder generates demo content so every gesture path works with
// no assets: a cell grid, a center cross, and a label.
func makePlaceholder() *ebiten.Image {
	img := ebiten.NewImage(PlaceholderSize, PlaceholderSize)
	img.Fill(ColorPlaceholderBody)

	size := float32(PlaceholderSize)
	for p := float32(0); p <= size; p += PlaceholderCell {
		vector.StrokeLine(img, p, 0, p, size, 1, ColorPlaceholderGrid, false)
		vector.StrokeLine(img, 0, p, size, p, 1, ColorPlaceholderGrid, false)
	}

	half := size / 2
	vector.StrokeLine(img, half-20, half, half+20, half, 2, ColorPlaceholderCross, false)
	vector.StrokeLine(img, half, half-20, half, half+20, 2, ColorPlaceholderCross, false)

	ebitenutil.DebugPrintAt(img, "placeholder content", int(half)-55, int(half)+30)
	return img
}

// drawContent renders the child under the live transform: translate to the
// content center, scale, then place at container center plus the live
// translation. A drop shadow and border frame the content so its edges stay
// readable while it moves.
func (g *Game) drawContent(screen *ebiten.Image) {
	if g.content == nil {
		return
	}

	cw := float64(g.screenWidth) / 2
	ch := float64(g.screenHeight) / 2
	scale := g.vp.Scale()
	tx, ty := g.vp.Translation()

	w := g.contentW * scale
	h := g.contentH * scale
	left := cw + tx - w/2
	top := ch + ty - h/2

	vector.DrawFilledRect(screen,
		float32(left+ShadowOffset*scale), float32(top+ShadowOffset*scale),
		float32(w), float32(h), ColorShadow, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-g.contentW/2, -g.contentH/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cw+tx, ch+ty)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.content, op)

	vector.StrokeRect(screen, float32(left), float32(top), float32(w), float32(h),
		BorderThickness, ColorContentBorder, false)
}
