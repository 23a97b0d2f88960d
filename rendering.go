// rendering.go
package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gophermaze/caster"
)

var (
	backgroundColor = color.RGBA{50, 50, 100, 255}
	floorColor      = color.RGBA{35, 35, 60, 255}
	borderColor     = color.RGBA{20, 20, 20, 255}
)

// horizontal faces are drawn at this brightness
const sideShade = 0.6

func (g *Game) drawScene(screen *ebiten.Image) {
	frame := g.camera.Frame()
	if frame == nil {
		return
	}
	halfH := frame.View.HalfHeight()

	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, 0, float32(halfH), float32(frame.View.Width), float32(halfH), floorColor, false)

	for _, s := range frame.Slices {
		if s.Drawn {
			g.drawSlice(screen, s, halfH)
		}
	}

	for _, sp := range g.camera.sprites {
		g.drawSprite(screen, frame, sp)
	}
}

// drawSlice draws a one pixel wide texture column over the slice's span.
// Source rows follow the unclamped wall height so walls cut off by the
// screen edge keep their proportions.
func (g *Game) drawSlice(screen *ebiten.Image, s caster.Slice, halfH float64) {
	tex := g.tex.Wall(s.Tag)
	if tex == nil || s.Height <= 0 {
		return
	}
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()

	texX := clampInt(int(s.TexU*float64(tw)), 0, tw-1)

	wallTop := halfH - s.Height/2
	srcTop := (float64(s.Top) - wallTop) / s.Height * float64(th)
	srcBottom := (float64(s.Bottom) - wallTop) / s.Height * float64(th)
	y0 := clampInt(int(math.Floor(srcTop)), 0, th-1)
	y1 := clampInt(int(math.Ceil(srcBottom)), y0+1, th)

	sub := tex.SubImage(image.Rect(texX, y0, texX+1, y1)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(1, float64(s.Bottom-s.Top)/float64(y1-y0))
	op.GeoM.Translate(float64(s.Column), float64(s.Top))
	if s.Axis == caster.Horizontal {
		op.ColorScale.Scale(sideShade, sideShade, sideShade, 1)
	}
	screen.DrawImage(sub, op)

	// ceiling edge
	vector.DrawFilledRect(screen, float32(s.Column), float32(s.Top), 1, 1, borderColor, false)
}

// draw sprite column by column, skipping stripes behind a nearer wall
func (g *Game) drawSprite(screen *ebiten.Image, frame *caster.Frame, sp visibleSprite) {
	r := sp.Rect
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	tw, th := sp.tex.Bounds().Dx(), sp.tex.Bounds().Dy()

	start := max(r.Min.X, 0)
	end := min(r.Max.X, frame.View.Width)
	for stripe := start; stripe < end; stripe++ {
		if frame.Occluded(stripe, sp.Distance) {
			continue
		}

		texX := clampInt((stripe-r.Min.X)*tw/w, 0, tw-1)
		sub := sp.tex.SubImage(image.Rect(texX, 0, texX+1, th)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(1, float64(h)/float64(th))
		op.GeoM.Translate(float64(stripe), float64(r.Min.Y))
		screen.DrawImage(sub, op)
	}
}
